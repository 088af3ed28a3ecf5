package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/antmicro/nisp/export"
	"github.com/stretchr/testify/require"
)

func TestSelector_ExplicitAllowList(t *testing.T) {
	t.Parallel()

	s := export.NewSelector([]string{"SLICEL"}, "", ".dot")
	require.True(t, s.Enabled("SLICEL"))
	require.False(t, s.Enabled("DSP48"))
}

func TestSelector_AllSentinelEnablesEverything(t *testing.T) {
	t.Parallel()

	s := export.NewSelector([]string{export.AllSentinel}, "", ".dot")
	require.True(t, s.Enabled("SLICEL"))
	require.True(t, s.Enabled("anything"))
}

func TestSelector_Export_SkipsUnselectedWithoutCallingBuild(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := export.NewSelector(nil, dir, ".dot")

	called := false
	err := s.Export("SLICEL", func() (string, error) {
		called = true
		return "unused", nil
	})
	require.NoError(t, err)
	require.False(t, called)
}

func TestSelector_Export_WritesSelectedName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := export.NewSelector([]string{"SLICEL"}, dir, ".dot")

	err := s.Export("SLICEL", func() (string, error) { return "digraph {}\n", nil })
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(dir, "SLICEL.dot"))
	require.NoError(t, err)
	require.Equal(t, "digraph {}\n", string(contents))
}
