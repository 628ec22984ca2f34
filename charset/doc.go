/*
Package charset implements sets of Unicode code points ("character sets")
together with the algebra needed to combine them.

A CharSet is represented by a strictly increasing sequence of boundaries.
Reading the sequence left to right, boundaries toggle membership: code points in

    [b₀, b₁)  [b₂, b₃)  …  [b₂ₖ, b₂ₖ₊₁)

are members, all others are not. The number of boundaries is always even.
All boundaries are taken from [LowerBound, UpperBound], where UpperBound is one
past the maximum Unicode code point U+10FFFF. Hence

    {}     = []                          (empty set)
    {*}    = [LowerBound, UpperBound]    (full set)
    [0-9]  = [0x30, 0x3a]

Complementing a set is a matter of toggling the outermost boundaries:
if the first boundary equals LowerBound it is dropped, otherwise LowerBound is
prepended; the same is done for UpperBound at the end.

CharSets are values. None of the operations in this package modifies its
operands, thus CharSets may be shared freely between goroutines.

    digits := charset.Range('0', '9'+1)
    letters := charset.Union(charset.Range('a', 'z'+1), charset.Range('A', 'Z'+1))
    alnum := digits.Union(letters)
    rest := alnum.Complement()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package charset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'runeclass.charset'.
func tracer() tracing.Trace {
	return tracing.Select("runeclass.charset")
}
