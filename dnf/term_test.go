package dnf_test

import (
	"testing"

	"github.com/antmicro/nisp/dnf"
	"github.com/stretchr/testify/require"
)

func TestTerm_TotalOrder(t *testing.T) {
	t.Parallel()

	ordered := []dnf.Term{
		dnf.FalseTerm(),
		dnf.PosVar(0),
		dnf.NegatedVar(0),
		dnf.PosVar(1),
		dnf.NegatedVar(1),
		dnf.TrueTerm(),
	}

	for i := 0; i < len(ordered)-1; i++ {
		require.True(t, dnf.Less(ordered[i], ordered[i+1]),
			"expected %+v < %+v", ordered[i], ordered[i+1])
		require.False(t, dnf.Less(ordered[i+1], ordered[i]),
			"order must not be symmetric")
	}
	for _, term := range ordered {
		require.False(t, dnf.Less(term, term), "Less must be irreflexive")
	}
}

func TestTerm_Equal(t *testing.T) {
	t.Parallel()

	require.True(t, dnf.Equal(dnf.PosVar(3), dnf.PosVar(3)))
	require.False(t, dnf.Equal(dnf.PosVar(3), dnf.PosVar(4)))
	require.False(t, dnf.Equal(dnf.PosVar(3), dnf.NegatedVar(3)))
	require.True(t, dnf.Equal(dnf.TrueTerm(), dnf.TrueTerm()))
	require.True(t, dnf.Equal(dnf.FalseTerm(), dnf.FalseTerm()))
	require.False(t, dnf.Equal(dnf.TrueTerm(), dnf.FalseTerm()))
}

func TestTerm_Negate(t *testing.T) {
	t.Parallel()

	require.Equal(t, dnf.NegatedVar(5), dnf.PosVar(5).Negate())
	require.Equal(t, dnf.PosVar(5), dnf.NegatedVar(5).Negate())
}

func TestTerm_NegateConstantPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { dnf.TrueTerm().Negate() })
	require.Panics(t, func() { dnf.FalseTerm().Negate() })
}

func TestTerm_IsComplementOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b dnf.Term
		want bool
	}{
		{"pos/neg same var", dnf.PosVar(2), dnf.NegatedVar(2), true},
		{"neg/pos same var", dnf.NegatedVar(2), dnf.PosVar(2), true},
		{"pos/neg different var", dnf.PosVar(2), dnf.NegatedVar(3), false},
		{"pos/pos same var", dnf.PosVar(2), dnf.PosVar(2), false},
		{"const/var", dnf.TrueTerm(), dnf.PosVar(2), false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.a.IsComplementOf(tc.b))
		})
	}
}
