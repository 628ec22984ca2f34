package charset

import (
	"fmt"
	"sort"
	"strings"
)

// Bounds of the code point range. UpperBound is a sentinel one past the
// maximum Unicode code point; it is a valid boundary, but never a valid
// input character.
const (
	LowerBound rune = 0
	UpperBound rune = 0x110000
)

// CharSet is a set of Unicode code points. The zero value is the empty set.
//
// Internally a CharSet is a sorted list of boundaries without repeats, with
// an even number of entries. Operations return new sets and never modify
// their operands.
type CharSet struct {
	bounds []rune
}

// Interval is a half-open range [Lo, Hi) of code points.
type Interval struct {
	Lo, Hi rune
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%#x,%#x)", iv.Lo, iv.Hi)
}

// New creates a character set from an arbitrary list of boundaries.
// Values outside [LowerBound, UpperBound] are dropped, the rest is sorted and
// de-duplicated. If this leaves an odd number of boundaries, the last
// boundary is toggled with UpperBound, i.e. an open-ended run is closed at
// UpperBound (or removed if it already ends there).
func New(boundaries ...rune) CharSet {
	b := make([]rune, 0, len(boundaries)+1)
	for _, x := range boundaries {
		if checkBoundary(x) != nil {
			tracer().Debugf("charset: dropping out-of-range boundary %#x", x)
			continue
		}
		b = append(b, x)
	}
	return normalize(b)
}

// NewStrict is like New, but fails on the first boundary outside
// [LowerBound, UpperBound] instead of dropping it. The error wraps
// ErrInvalidBoundary.
func NewStrict(boundaries ...rune) (CharSet, error) {
	for _, x := range boundaries {
		if err := checkBoundary(x); err != nil {
			return CharSet{}, err
		}
	}
	b := make([]rune, len(boundaries), len(boundaries)+1)
	copy(b, boundaries)
	return normalize(b), nil
}

// normalize sorts b in place, removes duplicates and repairs an odd length.
// b must contain valid boundaries only.
func normalize(b []rune) CharSet {
	if len(b) == 0 {
		return CharSet{}
	}
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	j := 0
	for i := 1; i < len(b); i++ {
		if b[i] == b[j] {
			continue
		}
		j++
		b[j] = b[i]
	}
	b = b[:j+1]
	if len(b)%2 == 1 {
		b = toggleUpper(b)
	}
	if len(b) == 0 {
		return CharSet{}
	}
	return CharSet{bounds: b}
}

// Empty returns the empty set.
func Empty() CharSet {
	return CharSet{}
}

// Full returns the set of all code points.
func Full() CharSet {
	return CharSet{bounds: []rune{LowerBound, UpperBound}}
}

// Range returns the set of code points in [lo, hi). For lo == hi the result is
// empty. Bounds are normalized like in New, thus Range(hi, lo) equals
// Range(lo, hi).
func Range(lo, hi rune) CharSet {
	if lo == hi {
		return CharSet{}
	}
	return New(lo, hi)
}

// Runes returns the set of the given code points. Invalid code points are
// ignored.
func Runes(rs ...rune) CharSet {
	valid := make([]rune, 0, len(rs))
	for _, r := range rs {
		if CheckCodepoint(r) == nil {
			valid = append(valid, r)
		}
	}
	if len(valid) == 0 {
		return CharSet{}
	}
	sort.Slice(valid, func(i, j int) bool { return valid[i] < valid[j] })
	// [a,a+1) [a+1,a+2) → [a,a+2)
	out := make([]rune, 0, 2*len(valid))
	for _, r := range valid {
		if n := len(out); n > 0 && out[n-1] >= r {
			if r+1 > out[n-1] {
				out[n-1] = r + 1
			}
			continue
		}
		out = append(out, r, r+1)
	}
	return CharSet{bounds: out}
}

// IsEmpty is true for the empty set.
func (cs CharSet) IsEmpty() bool {
	return len(cs.bounds) == 0
}

// IsFull is true if cs contains every code point.
func (cs CharSet) IsFull() bool {
	return len(cs.bounds) == 2 && cs.bounds[0] == LowerBound && cs.bounds[1] == UpperBound
}

// IsContinuous is true if cs consists of exactly one run of code points.
// The empty set is not continuous.
func (cs CharSet) IsContinuous() bool {
	return len(cs.bounds) == 2
}

// Includes checks if code point cp is a member of cs. Code points outside
// [LowerBound, UpperBound) are never members; use CheckCodepoint to detect
// them.
//
// Complexity is O(log n) for n boundaries.
func (cs CharSet) Includes(cp rune) bool {
	if cp < LowerBound || cp >= UpperBound {
		return false
	}
	// number of boundaries ≤ cp; odd means we are inside a member run
	k := sort.Search(len(cs.bounds), func(i int) bool { return cs.bounds[i] > cp })
	return k%2 == 1
}

// Count returns the number of code points in cs.
func (cs CharSet) Count() int {
	n := 0
	for i := 0; i < len(cs.bounds); i += 2 {
		n += int(cs.bounds[i+1] - cs.bounds[i])
	}
	return n
}

// Complement returns the set of all code points not in cs.
func (cs CharSet) Complement() CharSet {
	b := make([]rune, len(cs.bounds), len(cs.bounds)+2)
	copy(b, cs.bounds)
	b = toggleUpper(toggleLower(b))
	if len(b) == 0 {
		return CharSet{}
	}
	return CharSet{bounds: b}
}

// toggleLower drops a leading LowerBound or prepends one.
func toggleLower(b []rune) []rune {
	if len(b) > 0 && b[0] == LowerBound {
		return b[1:]
	}
	return append([]rune{LowerBound}, b...)
}

// toggleUpper drops a trailing UpperBound or appends one.
func toggleUpper(b []rune) []rune {
	if n := len(b); n > 0 && b[n-1] == UpperBound {
		return b[:n-1]
	}
	return append(b, UpperBound)
}

// Divide splits cs into its maximal continuous runs, in ascending order.
// Every resulting set satisfies IsContinuous.
func (cs CharSet) Divide() []CharSet {
	parts := make([]CharSet, 0, len(cs.bounds)/2)
	for i := 0; i < len(cs.bounds); i += 2 {
		parts = append(parts, CharSet{bounds: []rune{cs.bounds[i], cs.bounds[i+1]}})
	}
	return parts
}

// Ranges is like Divide, but returns the runs as intervals.
func (cs CharSet) Ranges() []Interval {
	ivs := make([]Interval, 0, len(cs.bounds)/2)
	for i := 0; i < len(cs.bounds); i += 2 {
		ivs = append(ivs, Interval{Lo: cs.bounds[i], Hi: cs.bounds[i+1]})
	}
	return ivs
}

// Boundaries returns a copy of the boundary list of cs.
func (cs CharSet) Boundaries() []rune {
	b := make([]rune, len(cs.bounds))
	copy(b, cs.bounds)
	return b
}

// Equals is true if cs and other contain the same code points.
// As CharSets are canonical, this is a boundary-by-boundary comparison.
func (cs CharSet) Equals(other CharSet) bool {
	if len(cs.bounds) != len(other.bounds) {
		return false
	}
	for i, b := range cs.bounds {
		if other.bounds[i] != b {
			return false
		}
	}
	return true
}

// String returns a readable representation, e.g. "[0x30,0x3a)[0x41,0x5b)".
// The empty set prints as "{}", the full set as "{*}".
func (cs CharSet) String() string {
	if cs.IsEmpty() {
		return "{}"
	}
	if cs.IsFull() {
		return "{*}"
	}
	var sb strings.Builder
	for _, iv := range cs.Ranges() {
		sb.WriteString(iv.String())
	}
	return sb.String()
}
