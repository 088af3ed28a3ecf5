package dnf

import "sort"

// Cube is one conjunction ("AND") of literals within a DNF Formula. An
// empty Cube denotes ⊤. Terms are kept strictly sorted ascending under
// Less, with no duplicates; if a complementary pair would coexist, the
// cube instead collapses to the single-term cube [False].
type Cube struct {
	Terms []Term
}

// TrueCube returns the cube with no terms, i.e. ⊤.
func TrueCube() Cube { return Cube{} }

// FalseCube returns the cube [False], i.e. ⊥.
func FalseCube() Cube { return Cube{Terms: []Term{FalseTerm()}} }

// NewCube builds a cube from a set of terms, inserting each one through
// AddTerm so the normal-form invariants hold regardless of input order or
// duplicates.
func NewCube(terms ...Term) Cube {
	var c Cube
	for _, t := range terms {
		c.AddTerm(t)
	}
	return c
}

// IsTrue reports whether every term in the cube is True (vacuously true for
// the empty cube).
func (c Cube) IsTrue() bool {
	for _, t := range c.Terms {
		if t.Kind != True {
			return false
		}
	}
	return true
}

// IsFalse reports whether the cube contains False.
func (c Cube) IsFalse() bool {
	for _, t := range c.Terms {
		if t.Kind == False {
			return true
		}
	}
	return false
}

// Len returns the number of terms in the cube, used by the placement-
// friendly "fewest constraints first" sort heuristic.
func (c Cube) Len() int { return len(c.Terms) }

// Clone returns an independent copy of the cube.
func (c Cube) Clone() Cube {
	if len(c.Terms) == 0 {
		return Cube{}
	}
	out := make([]Term, len(c.Terms))
	copy(out, c.Terms)
	return Cube{Terms: out}
}

// search returns the insertion index for t under Less, and whether t is
// already present at that index.
func (c Cube) search(t Term) (idx int, found bool) {
	idx = sort.Search(len(c.Terms), func(i int) bool {
		return !Less(c.Terms[i], t)
	})
	if idx < len(c.Terms) && Equal(c.Terms[idx], t) {
		return idx, true
	}
	return idx, false
}

func (c Cube) contains(t Term) bool {
	_, found := c.search(t)
	return found
}

// AddTerm inserts t preserving sorted order. Adding True is a no-op.
// Adding a duplicate is a no-op. Adding a term whose complement is already
// present collapses the cube to [False], in place, discarding all other
// terms — a cube once contradictory stays contradictory.
func (c *Cube) AddTerm(t Term) {
	if c.IsFalse() {
		return
	}
	switch t.Kind {
	case True:
		return
	case False:
		c.Terms = []Term{t}
		return
	}

	if c.contains(t.Negate()) {
		c.Terms = []Term{FalseTerm()}
		return
	}

	idx, found := c.search(t)
	if found {
		return
	}
	c.Terms = append(c.Terms, Term{})
	copy(c.Terms[idx+1:], c.Terms[idx:])
	c.Terms[idx] = t
}

// IsSubcube reports whether every interpretation satisfying c also
// satisfies other: every term of other.Terms must also appear in
// c.Terms — c carries at least as many constraints as other.
func (c Cube) IsSubcube(other Cube) bool {
	if c.IsFalse() {
		return true
	}
	if other.IsTrue() {
		return true
	}
	if other.IsFalse() {
		return c.IsFalse()
	}

	i := 0
	for _, ot := range other.Terms {
		for i < len(c.Terms) && Less(c.Terms[i], ot) {
			i++
		}
		if i >= len(c.Terms) || !Equal(c.Terms[i], ot) {
			return false
		}
		i++
	}
	return true
}

// Equal reports whether two cubes contain exactly the same terms in the
// same order (both are already normalized, so this is a structural, not
// just semantic, comparison).
func (c Cube) Equal(other Cube) bool {
	if len(c.Terms) != len(other.Terms) {
		return false
	}
	for i := range c.Terms {
		if !Equal(c.Terms[i], other.Terms[i]) {
			return false
		}
	}
	return true
}

// relaxDirection records which side of a pairwise reduction has, so far,
// been found to carry the "extra" constraints relative to the other.
type relaxDirection uint8

const (
	relaxNone relaxDirection = iota
	relaxA                  // A holds extra/stricter terms; result trends towards B
	relaxB                  // B holds extra/stricter terms; result trends towards A
	relaxComplement         // a single opposite-polarity pair was dropped
)

// TryReduce attempts to collapse a∨b into a single equivalent cube. It
// returns the reduced cube and true on success, or a zero Cube and false
// if no single-cube reduction could be found by this conservative,
// single-pass algorithm.
//
// The algorithm performs one coordinated linear merge over the two sorted
// term lists, permitting at most one "relaxation": either one
// complementary-literal drop (the classic consensus rule, A∧p ∨ A∧¬p = A),
// or a run of one-sided extra terms confined to a single side (absorption,
// A ∨ A∧x = A). A second relaxation, or one in the opposite direction,
// aborts the attempt.
func TryReduce(a, b Cube) (Cube, bool) {
	if a.IsFalse() {
		return b.Clone(), true
	}
	if b.IsFalse() {
		return a.Clone(), true
	}

	var result []Term
	state := relaxNone

	i, j := 0, 0
	for i < len(a.Terms) && j < len(b.Terms) {
		ta, tb := a.Terms[i], b.Terms[j]

		switch {
		case ta.Kind == True && tb.Kind == True:
			i++
			j++

		case ta.Var == tb.Var && ta.Kind == tb.Kind:
			result = append(result, ta)
			i++
			j++

		case ta.IsComplementOf(tb):
			if state != relaxNone {
				return Cube{}, false
			}
			state = relaxComplement
			i++
			j++

		default:
			var side relaxDirection
			if Less(ta, tb) {
				side = relaxA
				i++
			} else {
				side = relaxB
				j++
			}
			switch state {
			case relaxNone:
				state = side
			case side:
				// consistent with the direction already established
			default:
				return Cube{}, false
			}
		}
	}

	if i < len(a.Terms) {
		switch state {
		case relaxNone:
			state = relaxA
		case relaxA:
		default:
			return Cube{}, false
		}
	}
	if j < len(b.Terms) {
		switch state {
		case relaxNone:
			state = relaxB
		case relaxB:
		default:
			return Cube{}, false
		}
	}

	if len(result) == 0 {
		return TrueCube(), true
	}
	return Cube{Terms: result}, true
}
