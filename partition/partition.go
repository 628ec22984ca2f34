/*
Package partition splits character sets into pieces suitable as labels for
automaton edges.

Divide is the simple case: it decomposes a single character set into its
maximal continuous runs. An automaton builder will create one edge per run,
bounding the number of edges by the number of runs a character class uses,
instead of by the size of the alphabet.

An Alphabet goes one step further. Given all the labels of an automaton, it
computes the coarsest partition of the code point range such that every label
is a union of partition classes. Code points within a class are
indistinguishable for the automaton; transition tables may therefore be
indexed by class instead of by code point.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package partition

import (
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/runeclass/charset"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'runeclass.partition'.
func tracer() tracing.Trace {
	return tracing.Select("runeclass.partition")
}

// Divide returns the maximal continuous runs of cs in ascending order, each
// as a character set of its own.
func Divide(cs charset.CharSet) []charset.CharSet {
	parts := cs.Divide()
	tracer().Debugf("divide %v into %d part(s)", cs, len(parts))
	return parts
}

// Alphabet is a partition of the code point range into equivalence classes
// with respect to a set of labels. Two code points are in the same class
// if and only if every label either contains both or none of them.
//
// Create one with NewAlphabet. An Alphabet is immutable.
type Alphabet struct {
	bounds  []rune            // start of elementary intervals, terminated by UpperBound
	classOf []int             // class of elementary interval i
	classes []charset.CharSet // equivalence classes
}

// NewAlphabet computes the partition for a list of labels. Without labels, the
// alphabet consists of one single class (the full set).
func NewAlphabet(labels ...charset.CharSet) *Alphabet {
	bset := treeset.NewWith(utils.Int32Comparator)
	bset.Add(charset.LowerBound, charset.UpperBound)
	for _, l := range labels {
		for _, b := range l.Boundaries() {
			bset.Add(b)
		}
	}
	a := &Alphabet{bounds: make([]rune, 0, bset.Size())}
	for _, v := range bset.Values() {
		a.bounds = append(a.bounds, v.(rune))
	}
	// Every elementary interval gets a signature, telling which labels
	// contain it. Intervals with equal signatures form a class.
	index := make(map[string]int)
	var runs [][]rune
	sig := make([]byte, len(labels))
	for i := 0; i+1 < len(a.bounds); i++ {
		lo, hi := a.bounds[i], a.bounds[i+1]
		for j, l := range labels {
			sig[j] = '0'
			if l.Includes(lo) {
				sig[j] = '1'
			}
		}
		c, ok := index[string(sig)]
		if !ok {
			c = len(runs)
			index[string(sig)] = c
			runs = append(runs, nil)
		}
		runs[c] = append(runs[c], lo, hi)
		a.classOf = append(a.classOf, c)
	}
	a.classes = make([]charset.CharSet, len(runs))
	for c, r := range runs {
		a.classes[c] = charset.New(r...)
	}
	tracer().Debugf("alphabet for %d label(s): %d elementary intervals, %d classes",
		len(labels), len(a.classOf), len(a.classes))
	return a
}

// Size returns the number of equivalence classes.
func (a *Alphabet) Size() int {
	return len(a.classes)
}

// Class returns equivalence class i.
func (a *Alphabet) Class(i int) charset.CharSet {
	return a.classes[i]
}

// Classes returns all equivalence classes. Classes are numbered in order of
// their lowest code point; class 0 therefore always contains U+0000.
func (a *Alphabet) Classes() []charset.CharSet {
	c := make([]charset.CharSet, len(a.classes))
	copy(c, a.classes)
	return c
}

// ClassOf returns the class of code point cp, or -1 for invalid code points.
func (a *Alphabet) ClassOf(cp rune) int {
	if charset.CheckCodepoint(cp) != nil {
		return -1
	}
	i := sort.Search(len(a.bounds), func(i int) bool { return a.bounds[i] > cp })
	return a.classOf[i-1]
}

// ClassesOf returns the indices of all classes intersecting label, in
// ascending order. For labels used to create the alphabet, the union of these
// classes equals label.
func (a *Alphabet) ClassesOf(label charset.CharSet) []int {
	var cls []int
	for i, c := range a.classes {
		if !charset.Intersection(c, label).IsEmpty() {
			cls = append(cls, i)
		}
	}
	return cls
}

// Representative returns the lowest code point of class i.
func (a *Alphabet) Representative(i int) rune {
	return a.classes[i].Boundaries()[0]
}

func (a *Alphabet) String() string {
	var sb strings.Builder
	sb.WriteString("alphabet{")
	for i, c := range a.classes {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteString("}")
	return sb.String()
}
