package scanner

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/runeclass"
	"github.com/npillmayer/runeclass/charset"
	"github.com/npillmayer/runeclass/partition"
)

// --- Category codes --------------------------------------------------------

// CatCode is a category of code points.
type CatCode int16

// IllegalCatCode is the category of code points no categorizer knows.
const IllegalCatCode CatCode = 0

// RuneCategorizer assigns categories to code points. Loners are code points
// which may not form sequences with other code points of the same category.
type RuneCategorizer interface {
	Cat(r rune) (cat CatCode, isLoner bool)
}

// CatSeq is a run of code points of the same category.
type CatSeq struct {
	Cat    CatCode // catcode of all runes in this sequence
	Length int     // length of sequence in terms of runes
}

// SetCategorizer creates a categorizer from a list of character sets. A code
// point gets category i+1 for the first set i containing it, IllegalCatCode
// otherwise. Illegal code points are loners.
func SetCategorizer(sets ...charset.CharSet) RuneCategorizer {
	return setCategorizer(sets)
}

type setCategorizer []charset.CharSet

func (sc setCategorizer) Cat(r rune) (CatCode, bool) {
	for i, cs := range sc {
		if cs.Includes(r) {
			return CatCode(i + 1), false
		}
	}
	return IllegalCatCode, true
}

// AlphabetCategorizer creates a categorizer from an alphabet partition. Code
// point r gets category a.ClassOf(r)+1. Invalid code points get
// IllegalCatCode and are loners.
func AlphabetCategorizer(a *partition.Alphabet) RuneCategorizer {
	return alphabetCategorizer{a}
}

type alphabetCategorizer struct {
	alpha *partition.Alphabet
}

func (ac alphabetCategorizer) Cat(r rune) (CatCode, bool) {
	c := ac.alpha.ClassOf(r)
	if c < 0 {
		return IllegalCatCode, true
	}
	return CatCode(c + 1), false
}

// --- Category sequence reader ----------------------------------------------

// CatSeqReader splits its input into maximal runs of code points with equal
// category.
type CatSeqReader struct {
	isEof      bool
	next       rune
	hasNext    bool
	nextSize   int
	start, end uint64 // as bytes index
	reader     io.RuneReader
	writer     strings.Builder
}

// NewCatSeqReader creates a reader for input r.
func NewCatSeqReader(r io.RuneReader) *CatSeqReader {
	csr := &CatSeqReader{
		reader: r,
	}
	return csr
}

// Next reads the next run of code points. At the end of input it returns
// io.EOF. OutputString and Span refer to the run last read.
func (rs *CatSeqReader) Next(rc RuneCategorizer) (csq CatSeq, err error) {
	rs.writer.Reset()
	rs.start = rs.end
	var r rune
	r, err = rs.lookahead()
	if err != nil {
		if err != io.EOF {
			err = fmt.Errorf("scanner cannot read sequence (%w)", err)
		}
		return csq, err
	}
	var isLoner bool
	csq.Cat, isLoner = rc.Cat(r)
	rs.match(r)
	csq.Length = 1
	if isLoner { // rune category is not allowed to form sequences
		return csq, nil
	}
	for {
		r, err = rs.lookahead()
		if err == io.EOF {
			return csq, nil
		} else if err != nil {
			return csq, err
		}
		if cc, loner := rc.Cat(r); cc != csq.Cat || loner {
			return csq, nil
		}
		rs.match(r)
		csq.Length++
	}
}

// OutputString returns the code points of the run last read.
func (rs *CatSeqReader) OutputString() string {
	return rs.writer.String()
}

// Span returns the byte positions of the run last read.
func (rs *CatSeqReader) Span() runeclass.Span {
	return runeclass.Span{rs.start, rs.end}
}

func (rs *CatSeqReader) lookahead() (r rune, err error) {
	if rs.isEof {
		return utf8.RuneError, io.EOF
	}
	if rs.hasNext {
		return rs.next, nil
	}
	r, rs.nextSize, err = rs.reader.ReadRune()
	if err == io.EOF {
		tracer().Debugf("CatSeqReader reached end of input")
		rs.isEof = true
		return utf8.RuneError, err
	} else if err != nil {
		return 0, err
	}
	rs.next, rs.hasNext = r, true
	return r, nil
}

func (rs *CatSeqReader) match(r rune) {
	tracer().Debugf("match %#U", r)
	rs.writer.WriteRune(r)
	rs.end += uint64(rs.nextSize)
	rs.hasNext = false
}
