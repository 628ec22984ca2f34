package partition

import (
	"math/rand"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/npillmayer/runeclass/charset"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDivide(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runeclass.partition")
	defer teardown()
	//
	alnum := charset.UnionAll(charset.Range('0', '9'+1), charset.Range('A', 'Z'+1), charset.Range('a', 'z'+1))
	parts := Divide(alnum)
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, have %d", len(parts))
	}
	for i, p := range parts {
		if !p.IsContinuous() {
			t.Errorf("part %d not continuous", i)
		}
		if i > 0 && parts[i-1].Boundaries()[1] >= p.Boundaries()[0] {
			t.Errorf("parts not in ascending order")
		}
	}
	if !parts[1].Equals(charset.Range('A', 'Z'+1)) {
		t.Errorf("expected part 1 to be [A-Z], is %v", parts[1])
	}
}

func TestAlphabetSingleClass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runeclass.partition")
	defer teardown()
	//
	a := NewAlphabet()
	if a.Size() != 1 || !a.Class(0).IsFull() {
		t.Errorf("alphabet without labels should have a single full class, is %v", a)
	}
	if a.ClassOf('x') != 0 || a.ClassOf(-1) != -1 || a.ClassOf(charset.UpperBound) != -1 {
		t.Errorf("unexpected class lookup results")
	}
}

func TestAlphabetClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runeclass.partition")
	defer teardown()
	//
	digit := charset.Range('0', '9'+1)
	hex := charset.UnionAll(digit, charset.Range('a', 'f'+1), charset.Range('A', 'F'+1))
	a := NewAlphabet(digit, hex)
	t.Logf("%v", a)
	// classes: neither (3 runs), digit+hex, hex only (2 runs)
	if a.Size() != 3 {
		t.Fatalf("expected 3 classes, have %d: %v", a.Size(), a)
	}
	if a.ClassOf('5') == a.ClassOf('b') || a.ClassOf('b') != a.ClassOf('E') {
		t.Errorf("digits and hex letters should be separated, hex letters unified")
	}
	if a.ClassOf('g') != a.ClassOf(' ') || a.ClassOf('g') != 0 {
		t.Errorf("'g' and ' ' should share class 0")
	}
	if cls := a.ClassesOf(hex); len(cls) != 2 {
		t.Errorf("hex should be made up from 2 classes, is %v", cls)
	}
	if r := a.Representative(a.ClassOf('c')); r != 'A' {
		t.Errorf("expected 'A' to represent hex letters, is %q", r)
	}
}

func TestAlphabetRefinesLabels(t *testing.T) {
	c := qt.New(t)
	rnd := rand.New(rand.NewSource(815))
	for n := 0; n < 200; n++ {
		labels := make([]charset.CharSet, rnd.Intn(5))
		for i := range labels {
			labels[i] = charset.New(rune(rnd.Intn(100)), rune(rnd.Intn(100)), rune(rnd.Intn(100)), rune(rnd.Intn(100)))
		}
		a := NewAlphabet(labels...)
		// classes are pairwise disjoint and cover the full range
		total := charset.Empty()
		for _, cl := range a.Classes() {
			c.Assert(charset.Intersection(total, cl).IsEmpty(), qt.IsTrue)
			total = charset.Union(total, cl)
		}
		c.Assert(total.IsFull(), qt.IsTrue)
		// every label is a union of its classes
		for _, l := range labels {
			u := charset.Empty()
			for _, i := range a.ClassesOf(l) {
				c.Assert(charset.Subtraction(a.Class(i), l).IsEmpty(), qt.IsTrue)
				u = charset.Union(u, a.Class(i))
			}
			c.Assert(u.Equals(l), qt.IsTrue, qt.Commentf("label %v, alphabet %v", l, a))
		}
		for cp := rune(0); cp < 110; cp++ {
			c.Assert(a.Class(a.ClassOf(cp)).Includes(cp), qt.IsTrue)
		}
	}
}
