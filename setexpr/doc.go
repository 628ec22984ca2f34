/*
Package setexpr implements a small expression language for character sets.

Expressions combine character sets with the operators of package charset:

    ~e        complement
    a & b     intersection
    a | b     union
    a - b     subtraction

'&' binds stronger than '|' and '-', which are left-associative. Operands are
names of character sets, single code points, inclusive ranges, raw boundary
lists or parenthesized expressions:

    letter | '_'                 names are resolved in the current scope
    'a'..'z' - ['a' 'b']         ranges include both ends
    [0x30 0x3a]                  boundaries, as in charset.New
    vowels = 'a'|'e'|'i'|'o'|'u' assignment binds a name

Code points are written as numbers (decimal or 0x-prefixed hex) or as quoted
characters. A '#' starts a comment running to the end of the line.

An Evaluator holds a runtime environment with scopes of named character sets.
The outermost scope contains built-in sets (see runtime.Builtins).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package setexpr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'runeclass.setexpr'.
func tracer() tracing.Trace {
	return tracing.Select("runeclass.setexpr")
}
