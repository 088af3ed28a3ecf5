package dnf

// Formula is an ordered list of cubes, semantically their disjunction. An
// empty Formula denotes ⊥. Formula equality is mutual subformula
// containment, not structural — see IsSubformulaOf and Equal.
type Formula struct {
	Cubes []Cube
}

// FalseFormula returns the formula with no cubes, i.e. ⊥.
func FalseFormula() Formula { return Formula{} }

// TrueFormula returns the single-cube formula [⊤].
func TrueFormula() Formula { return Formula{Cubes: []Cube{TrueCube()}} }

// IsFalse reports whether the formula has no cubes.
func (f Formula) IsFalse() bool { return len(f.Cubes) == 0 }

// Clone returns an independent deep copy of the formula.
func (f Formula) Clone() Formula {
	if len(f.Cubes) == 0 {
		return Formula{}
	}
	out := make([]Cube, len(f.Cubes))
	for i, c := range f.Cubes {
		out[i] = c.Clone()
	}
	return Formula{Cubes: out}
}

// AddCube appends c unconditionally, without attempting any reduction.
func (f *Formula) AddCube(c Cube) {
	f.Cubes = append(f.Cubes, c)
}

// AddCubeOpt folds c into the formula, attempting pairwise reduction
// against each existing cube. On the first reduction that actually changes
// an existing cube, that cube's slot is replaced and the scan restarts
// against the (now different) formula. A reduction that yields exactly the
// existing cube means c was already implied by the formula and is
// discarded without being appended. A reduction that yields ⊥ removes the
// corresponding cube entirely. If no reduction ever applies, c is appended
// as a new disjunct.
func (f *Formula) AddCubeOpt(c Cube) {
	if c.IsFalse() {
		return
	}

restart:
	for idx, existing := range f.Cubes {
		reduced, ok := TryReduce(c, existing)
		if !ok {
			continue
		}
		if reduced.Equal(existing) {
			return
		}
		if reduced.IsFalse() {
			f.Cubes = append(f.Cubes[:idx:idx], f.Cubes[idx+1:]...)
			goto restart
		}
		f.Cubes[idx] = reduced
		c = reduced
		goto restart
	}

	f.Cubes = append(f.Cubes, c)
}

// Disjunct folds every cube of other into f via AddCube, unconditionally.
func (f *Formula) Disjunct(other Formula) {
	for _, c := range other.Cubes {
		f.AddCube(c)
	}
}

// DisjunctOpt folds every cube of other into f via AddCubeOpt.
func (f *Formula) DisjunctOpt(other Formula) {
	for _, c := range other.Cubes {
		f.AddCubeOpt(c)
	}
}

// ConjunctTerm adds t to every cube in the formula.
func (f *Formula) ConjunctTerm(t Term) {
	for i := range f.Cubes {
		f.Cubes[i].AddTerm(t)
	}
}

// ConjunctTermLast adds t only to the most recently appended cube. The
// router uses this to extend the single disjunct it just produced without
// touching alternatives accumulated from earlier routes.
func (f *Formula) ConjunctTermLast(t Term) {
	if len(f.Cubes) == 0 {
		return
	}
	f.Cubes[len(f.Cubes)-1].AddTerm(t)
}

// IsSubformulaOf reports whether every cube of f is a subcube of some
// single cube of other. A true result means every satisfying assignment of
// f also satisfies other. A cube of f that is covered only by several cubes
// of other together is not detected, so the result is false in that case
// (e.g. ⊤ against p ∨ ¬p).
func (f Formula) IsSubformulaOf(other Formula) bool {
	for _, c := range f.Cubes {
		matched := false
		for _, oc := range other.Cubes {
			if c.IsSubcube(oc) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// Equal reports whether f and other are mutual subformulas of one another
// under IsSubformulaOf.
func (f Formula) Equal(other Formula) bool {
	return f.IsSubformulaOf(other) && other.IsSubformulaOf(f)
}

// Optimize runs a fixpoint pass that uses each cube, in turn, as a "fact"
// to reduce the others against, retiring facts as they're used so a later
// cube can be reduced against an earlier, already-reduced one. It
// terminates when a full pass produces no further change.
func (f *Formula) Optimize() {
passes:
	for {
		for i := 0; i < len(f.Cubes); i++ {
			for j := 0; j < len(f.Cubes); j++ {
				if i == j {
					continue
				}
				reduced, ok := TryReduce(f.Cubes[i], f.Cubes[j])
				if !ok {
					continue
				}
				if reduced.IsFalse() {
					f.removeCube(j)
					continue passes
				}
				if !reduced.Equal(f.Cubes[i]) || !reduced.Equal(f.Cubes[j]) {
					f.Cubes[i] = reduced
					f.removeCube(j)
					continue passes
				}
			}
		}
		return
	}
}

func (f *Formula) removeCube(idx int) {
	f.Cubes = append(f.Cubes[:idx:idx], f.Cubes[idx+1:]...)
}
