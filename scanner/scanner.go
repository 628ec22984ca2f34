/*
Package scanner provides scanning support for character set expressions and
for splitting input into runs of code points with equal category.

Tokenizing is done with lexmachine, wrapped by an adapter (LMAdapter) which
produces runeclass.Tokens. Category runs are read by a CatSeqReader, which
categorizes every input code point with a RuneCategorizer; categorizers may be
built from character sets or from the classes of an alphabet partition.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/runeclass"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'runeclass.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("runeclass.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons. Literal one-character
// tokens use the character as token type.
const (
	EOF     = scanner.EOF
	Ident   = scanner.Ident
	Int     = scanner.Int
	Char    = scanner.Char
	Comment = scanner.Comment
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() runeclass.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the lexmachine
// adapter.
type DefaultToken struct {
	kind   runeclass.TokType
	lexeme string
	Val    interface{}
	span   runeclass.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ runeclass.TokType, lexeme string, span runeclass.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() runeclass.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() runeclass.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%q@%v", t.lexeme, t.span)
}
