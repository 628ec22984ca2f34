package charset

// --- Set algebra -----------------------------------------------------------

// Union returns the set of code points in a or b.
func Union(a, b CharSet) CharSet {
	return sweep(a, b, func(x, y bool) bool { return x || y })
}

// Intersection returns the set of code points in both a and b.
func Intersection(a, b CharSet) CharSet {
	return sweep(a, b, func(x, y bool) bool { return x && y })
}

// Subtraction returns the set of code points in a, but not in b.
func Subtraction(a, b CharSet) CharSet {
	return Intersection(a, b.Complement())
}

// UnionAll returns the union of all sets given. For no arguments, it
// returns the empty set.
func UnionAll(sets ...CharSet) CharSet {
	u := CharSet{}
	for _, s := range sets {
		u = Union(u, s)
	}
	return u
}

// Union is the method form of function Union.
func (cs CharSet) Union(other CharSet) CharSet {
	return Union(cs, other)
}

// Intersect is the method form of function Intersection.
func (cs CharSet) Intersect(other CharSet) CharSet {
	return Intersection(cs, other)
}

// Subtract is the method form of function Subtraction.
func (cs CharSet) Subtract(other CharSet) CharSet {
	return Subtraction(cs, other)
}

// sweep combines two sets boundary by boundary.
//
// Between two consecutive boundaries of the merged boundary list, membership
// in a and in b is constant. We evaluate the predicate at each boundary and
// emit a boundary of the result whenever the predicate's value changes.
// This yields a canonical result: runs touching each other are never
// separated by a boundary.
func sweep(a, b CharSet, pred func(bool, bool) bool) CharSet {
	var out []rune
	inside := false
	i, j := 0, 0
	for i < len(a.bounds) || j < len(b.bounds) {
		var x rune
		switch {
		case j >= len(b.bounds):
			x = a.bounds[i]
		case i >= len(a.bounds):
			x = b.bounds[j]
		case a.bounds[i] <= b.bounds[j]:
			x = a.bounds[i]
		default:
			x = b.bounds[j]
		}
		// skip x in both lists, merging duplicates
		for i < len(a.bounds) && a.bounds[i] == x {
			i++
		}
		for j < len(b.bounds) && b.bounds[j] == x {
			j++
		}
		// i and j now count the boundaries ≤ x: odd means member
		member := pred(i%2 == 1, j%2 == 1)
		if member != inside {
			out = append(out, x)
			inside = member
		}
	}
	if len(out) == 0 {
		return CharSet{}
	}
	return CharSet{bounds: out}
}
