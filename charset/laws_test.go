package charset

import (
	"math/rand"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

// randomSet creates a set with up to 8 runs. Boundaries cluster in a small
// range to provoke touching and overlapping runs, and sometimes hit
// LowerBound or UpperBound.
func randomSet(rnd *rand.Rand) CharSet {
	n := rnd.Intn(9)
	b := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		switch rnd.Intn(10) {
		case 0:
			b = append(b, LowerBound)
		case 1:
			b = append(b, UpperBound)
		default:
			b = append(b, rune(rnd.Intn(64)))
		}
	}
	return New(b...)
}

func forAllTriples(t *testing.T, law func(c *qt.C, a, b, x CharSet)) {
	c := qt.New(t)
	rnd := rand.New(rand.NewSource(4711))
	for i := 0; i < 500; i++ {
		a, b, x := randomSet(rnd), randomSet(rnd), randomSet(rnd)
		c.Run("", func(c *qt.C) {
			c.Logf("a=%v, b=%v, c=%v", a, b, x)
			law(c, a, b, x)
		})
	}
}

// sameSet is a checker comparing CharSets boundary by boundary.
var sameSet = qt.CmpEquals(cmp.Comparer(func(x, y CharSet) bool { return x.Equals(y) }))

func TestLawCanonicalForm(t *testing.T) {
	forAllTriples(t, func(c *qt.C, a, b, _ CharSet) {
		for _, s := range []CharSet{Union(a, b), Intersection(a, b), Subtraction(a, b), a.Complement()} {
			bs := s.Boundaries()
			c.Assert(len(bs)%2, qt.Equals, 0)
			for i := 1; i < len(bs); i++ {
				c.Assert(bs[i-1] < bs[i], qt.IsTrue)
			}
		}
	})
}

func TestLawDoubleComplement(t *testing.T) {
	forAllTriples(t, func(c *qt.C, a, _, _ CharSet) {
		c.Assert(a.Complement().Complement(), sameSet, a)
	})
}

func TestLawCommutativity(t *testing.T) {
	forAllTriples(t, func(c *qt.C, a, b, _ CharSet) {
		c.Assert(Union(a, b), sameSet, Union(b, a))
		c.Assert(Intersection(a, b), sameSet, Intersection(b, a))
	})
}

func TestLawAssociativity(t *testing.T) {
	forAllTriples(t, func(c *qt.C, a, b, x CharSet) {
		c.Assert(Union(a, Union(b, x)), sameSet, Union(Union(a, b), x))
		c.Assert(Intersection(a, Intersection(b, x)), sameSet, Intersection(Intersection(a, b), x))
	})
}

func TestLawDeMorgan(t *testing.T) {
	forAllTriples(t, func(c *qt.C, a, b, _ CharSet) {
		c.Assert(Union(a, b).Complement(), sameSet, Intersection(a.Complement(), b.Complement()))
		c.Assert(Intersection(a, b).Complement(), sameSet, Union(a.Complement(), b.Complement()))
	})
}

func TestLawPartitionByComplement(t *testing.T) {
	forAllTriples(t, func(c *qt.C, a, _, _ CharSet) {
		c.Assert(Union(a, a.Complement()).IsFull(), qt.IsTrue)
		c.Assert(Intersection(a, a.Complement()).IsEmpty(), qt.IsTrue)
		c.Assert(a.Count()+a.Complement().Count(), qt.Equals, int(UpperBound))
	})
}

func TestLawInclusionExclusion(t *testing.T) {
	forAllTriples(t, func(c *qt.C, a, b, _ CharSet) {
		c.Assert(Union(a, b).Count()+Intersection(a, b).Count(), qt.Equals, a.Count()+b.Count())
	})
}

func TestLawIdempotenceAndAbsorption(t *testing.T) {
	forAllTriples(t, func(c *qt.C, a, _, _ CharSet) {
		c.Assert(Union(a, a), sameSet, a)
		c.Assert(Intersection(a, a), sameSet, a)
		c.Assert(Union(a, Empty()), sameSet, a)
		c.Assert(Intersection(a, Empty()).IsEmpty(), qt.IsTrue)
		c.Assert(Union(a, Full()).IsFull(), qt.IsTrue)
		c.Assert(Intersection(a, Full()), sameSet, a)
	})
}

func TestLawSubtraction(t *testing.T) {
	forAllTriples(t, func(c *qt.C, a, b, _ CharSet) {
		d := Subtraction(a, b)
		c.Assert(Intersection(d, b).IsEmpty(), qt.IsTrue)
		c.Assert(Union(d, Intersection(a, b)), sameSet, a)
	})
}

func TestLawMembership(t *testing.T) {
	forAllTriples(t, func(c *qt.C, a, b, _ CharSet) {
		u, x := Union(a, b), Intersection(a, b)
		for cp := rune(0); cp < 70; cp++ {
			c.Assert(u.Includes(cp), qt.Equals, a.Includes(cp) || b.Includes(cp))
			c.Assert(x.Includes(cp), qt.Equals, a.Includes(cp) && b.Includes(cp))
		}
	})
}

func TestLawDivide(t *testing.T) {
	forAllTriples(t, func(c *qt.C, a, _, _ CharSet) {
		parts := a.Divide()
		var flat []rune
		u := Empty()
		for i, p := range parts {
			c.Assert(p.IsContinuous(), qt.IsTrue)
			for j := i + 1; j < len(parts); j++ {
				c.Assert(Intersection(p, parts[j]).IsEmpty(), qt.IsTrue)
			}
			u = Union(u, p)
			flat = append(flat, p.Boundaries()...)
		}
		c.Assert(u, sameSet, a)
		c.Assert(New(flat...), sameSet, a)
	})
}
