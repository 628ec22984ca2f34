package setexpr

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/runeclass"
	"github.com/npillmayer/runeclass/scanner"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the expression language. One-character operators use the
// character as token type.
const (
	EOF    = scanner.EOF
	Ident  = scanner.Ident
	Num    = scanner.Int
	Char   = scanner.Char
	DotDot = -20
)

var literals = []string{"=", "|", "&", "-", "~", "(", ")", "[", "]", ".."}

var tokenIds = map[string]int{
	"ID":   Ident,
	"NUM":  Num,
	"CHAR": Char,
	"=":    '=',
	"|":    '|',
	"&":    '&',
	"-":    '-',
	"~":    '~',
	"(":    '(',
	")":    ')',
	"[":    '[',
	"]":    ']',
	"..":   DotDot,
}

var lexer struct {
	once    sync.Once
	adapter *scanner.LMAdapter
	err     error
}

// lmAdapter compiles the lexer on first use.
func lmAdapter() (*scanner.LMAdapter, error) {
	lexer.once.Do(func() {
		init := func(lx *lexmachine.Lexer) {
			lx.Add([]byte(`\#[^\n]*`), scanner.Skip)
			lx.Add([]byte(`( |\t|\n|\r)+`), scanner.Skip)
			lx.Add([]byte(`'(\\.|[^'\\])+'`), scanner.MakeToken("CHAR", Char))
			lx.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), scanner.MakeToken("ID", Ident))
			lx.Add([]byte(`0x([0-9]|[a-f]|[A-F])+|[0-9]+`), scanner.MakeToken("NUM", Num))
		}
		lexer.adapter, lexer.err = scanner.NewLMAdapter(init, literals, nil, tokenIds)
	})
	return lexer.adapter, lexer.err
}

// tokenize splits a line into tokens, the last one being EOF. Unconsumed
// input is an error.
func tokenize(line string) ([]runeclass.Token, error) {
	lm, err := lmAdapter()
	if err != nil {
		return nil, err
	}
	sc, err := lm.Scanner(line)
	if err != nil {
		return nil, err
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		if scanErr != nil {
			return
		}
		span := runeclass.Span{0, uint64(len(line))}
		var ui *machines.UnconsumedInput
		if errors.As(e, &ui) {
			_, w := utf8.DecodeRuneInString(line[ui.StartTC:])
			if w == 0 {
				w = 1
			}
			span = runeclass.Span{uint64(ui.StartTC), uint64(ui.StartTC + w)}
		}
		scanErr = errorf(ErrSyntax, span, "unexpected input %q", snippet(line, span))
	})
	var toks []runeclass.Token
	for {
		tok := sc.NextToken()
		toks = append(toks, tok)
		if tok.TokType() == EOF {
			break
		}
	}
	if scanErr != nil {
		return nil, scanErr
	}
	return toks, nil
}

// number decodes a NUM or CHAR token. Numbers too large for uint64 saturate,
// the caller decides whether they are invalid boundaries or code points.
func number(tok runeclass.Token) (uint64, error) {
	lexeme := tok.Lexeme()
	switch tok.TokType() {
	case Num:
		var n uint64
		var err error
		if strings.HasPrefix(lexeme, "0x") {
			n, err = strconv.ParseUint(lexeme[2:], 16, 64)
		} else {
			n, err = strconv.ParseUint(lexeme, 10, 64)
		}
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, errorf(ErrSyntax, tok.Span(), "malformed number %s", lexeme)
		}
		return n, nil
	case Char:
		inner := lexeme[1 : len(lexeme)-1]
		r, _, tail, err := strconv.UnquoteChar(inner, '\'')
		if err != nil || tail != "" {
			return 0, errorf(ErrSyntax, tok.Span(), "%s is not a single code point", lexeme)
		}
		return uint64(r), nil
	}
	return 0, errorf(ErrSyntax, tok.Span(), "expected code point, found %q", tok.Lexeme())
}

func snippet(line string, span runeclass.Span) string {
	if span.To() > uint64(len(line)) {
		return line[span.From():]
	}
	return line[span.From():span.To()]
}
