package dnf_test

import (
	"testing"

	"github.com/antmicro/nisp/dnf"
	"github.com/stretchr/testify/require"
)

func TestFormula_FalseIsEmpty(t *testing.T) {
	t.Parallel()

	f := dnf.FalseFormula()
	require.True(t, f.IsFalse())
	require.Equal(t, 0, len(f.Cubes))
}

func TestFormula_TrueIsSingleTrueCube(t *testing.T) {
	t.Parallel()

	f := dnf.TrueFormula()
	require.False(t, f.IsFalse())
	require.Len(t, f.Cubes, 1)
	require.True(t, f.Cubes[0].IsTrue())
}

func TestFormula_AddCubeOptAbsorbsImpliedCube(t *testing.T) {
	t.Parallel()

	var f dnf.Formula
	f.AddCubeOpt(dnf.NewCube(dnf.PosVar(0)))
	f.AddCubeOpt(dnf.NewCube(dnf.PosVar(0), dnf.PosVar(1)))

	require.Len(t, f.Cubes, 1, "A∧B adds nothing once A is already a disjunct")
	require.True(t, f.Cubes[0].Equal(dnf.NewCube(dnf.PosVar(0))))
}

func TestFormula_AddCubeOptMergesComplementaryPair(t *testing.T) {
	t.Parallel()

	var f dnf.Formula
	f.AddCubeOpt(dnf.NewCube(dnf.PosVar(5), dnf.PosVar(0)))
	f.AddCubeOpt(dnf.NewCube(dnf.PosVar(5), dnf.NegatedVar(0)))

	require.Len(t, f.Cubes, 1)
	require.True(t, f.Cubes[0].Equal(dnf.NewCube(dnf.PosVar(5))))
}

func TestFormula_AddCubeOptDiscardsFalseCube(t *testing.T) {
	t.Parallel()

	var f dnf.Formula
	f.AddCubeOpt(dnf.FalseCube())
	require.True(t, f.IsFalse())
}

func TestFormula_ConjunctTerm(t *testing.T) {
	t.Parallel()

	var f dnf.Formula
	f.AddCube(dnf.NewCube(dnf.PosVar(0)))
	f.AddCube(dnf.NewCube(dnf.PosVar(1)))
	f.ConjunctTerm(dnf.PosVar(9))

	require.Len(t, f.Cubes, 2)
	for _, c := range f.Cubes {
		require.True(t, c.IsSubcube(dnf.NewCube(dnf.PosVar(9))),
			"every cube must now carry the conjoined term")
	}
}

func TestFormula_ConjunctTermLastOnlyTouchesLastCube(t *testing.T) {
	t.Parallel()

	var f dnf.Formula
	f.AddCube(dnf.NewCube(dnf.PosVar(0)))
	f.AddCube(dnf.NewCube(dnf.PosVar(1)))
	f.ConjunctTermLast(dnf.PosVar(9))

	require.True(t, f.Cubes[0].Equal(dnf.NewCube(dnf.PosVar(0))))
	require.True(t, f.Cubes[1].Equal(dnf.NewCube(dnf.PosVar(1), dnf.PosVar(9))))
}

func TestFormula_IsSubformulaOf(t *testing.T) {
	t.Parallel()

	var narrow, wide dnf.Formula
	narrow.AddCube(dnf.NewCube(dnf.PosVar(0), dnf.PosVar(1)))
	wide.AddCube(dnf.NewCube(dnf.PosVar(0)))

	require.True(t, narrow.IsSubformulaOf(wide))
	require.False(t, wide.IsSubformulaOf(narrow))
}

func TestFormula_EqualIsMutualSubformula(t *testing.T) {
	t.Parallel()

	var a, b dnf.Formula
	a.AddCube(dnf.NewCube(dnf.PosVar(0)))
	a.AddCube(dnf.NewCube(dnf.NegatedVar(0)))
	b.AddCube(dnf.TrueCube())

	require.True(t, a.Equal(b), "p ∨ ¬p is semantically True")
}

func TestFormula_OptimizeReachesFixpoint(t *testing.T) {
	t.Parallel()

	var f dnf.Formula
	f.AddCube(dnf.NewCube(dnf.PosVar(5), dnf.PosVar(0)))
	f.AddCube(dnf.NewCube(dnf.PosVar(5), dnf.NegatedVar(0)))
	f.AddCube(dnf.NewCube(dnf.PosVar(5), dnf.PosVar(1)))

	f.Optimize()

	require.Len(t, f.Cubes, 1, "all three disjuncts collapse to the single var-5 cube")
	require.True(t, f.Cubes[0].Equal(dnf.NewCube(dnf.PosVar(5))))
}

func TestFormula_OptimizeIsIdempotent(t *testing.T) {
	t.Parallel()

	var f dnf.Formula
	f.AddCube(dnf.NewCube(dnf.PosVar(0)))
	f.AddCube(dnf.NewCube(dnf.PosVar(1)))
	f.AddCube(dnf.NewCube(dnf.PosVar(2)))

	f.Optimize()
	first := f.Clone()
	f.Optimize()

	require.True(t, f.Equal(first))
}

func TestFormula_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	var f dnf.Formula
	f.AddCube(dnf.NewCube(dnf.PosVar(0)))
	clone := f.Clone()
	clone.Cubes[0].AddTerm(dnf.PosVar(1))

	require.False(t, f.Cubes[0].Equal(clone.Cubes[0]))
}
