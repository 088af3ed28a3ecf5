package sitelog_test

import (
	"testing"

	"github.com/antmicro/nisp/sitelog"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_DefaultsToCriticalOnlyNoCaller(t *testing.T) {
	t.Setenv(sitelog.EnvLogLevel, "")
	t.Setenv(sitelog.EnvLogCaller, "")

	logger := sitelog.New()
	require.NotNil(t, logger)
	require.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	require.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_ExtraDetailEnablesDebug(t *testing.T) {
	t.Setenv(sitelog.EnvLogLevel, "4")

	logger := sitelog.New()
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_OutOfRangeLevelClampsToMostVerbose(t *testing.T) {
	t.Setenv(sitelog.EnvLogLevel, "99")

	logger := sitelog.New()
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_MalformedLevelFallsBackToDefault(t *testing.T) {
	t.Setenv(sitelog.EnvLogLevel, "not-a-number")

	logger := sitelog.New()
	require.False(t, logger.Core().Enabled(zapcore.WarnLevel))
}
