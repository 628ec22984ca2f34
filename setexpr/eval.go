package setexpr

import (
	"fmt"
	"math"

	"github.com/npillmayer/runeclass"
	"github.com/npillmayer/runeclass/charset"
	"github.com/npillmayer/runeclass/runtime"
)

// Evaluator evaluates statements of the expression language. Names are
// resolved in, and assignments go to, the current scope of its runtime
// environment.
type Evaluator struct {
	rt     *runtime.Runtime
	strict bool
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// Strict sets the handling of invalid boundaries in boundary lists. A strict
// evaluator reports them as errors, otherwise they are dropped.
func Strict(b bool) Option {
	return func(ev *Evaluator) {
		ev.strict = b
	}
}

// WithRuntime lets an Evaluator use an existing runtime environment.
func WithRuntime(rt *runtime.Runtime) Option {
	return func(ev *Evaluator) {
		ev.rt = rt
	}
}

// NewEvaluator creates an evaluator. Without option WithRuntime, a new
// runtime environment is created.
func NewEvaluator(opts ...Option) *Evaluator {
	ev := &Evaluator{}
	for _, opt := range opts {
		opt(ev)
	}
	if ev.rt == nil {
		ev.rt = runtime.NewRuntimeEnvironment()
	}
	return ev
}

// Runtime returns the runtime environment of the evaluator.
func (ev *Evaluator) Runtime() *runtime.Runtime {
	return ev.rt
}

// IsStrict is true if invalid boundaries are reported as errors.
func (ev *Evaluator) IsStrict() bool {
	return ev.strict
}

// Lookup resolves a name in the current scope and its parents.
func (ev *Evaluator) Lookup(name string) (charset.CharSet, bool) {
	tag, _ := ev.rt.ScopeTree.Current().ResolveTag(name)
	if tag == nil {
		return charset.CharSet{}, false
	}
	return tag.Set, true
}

// Eval evaluates a statement and returns the resulting character set. For an
// assignment, this is the set bound to the name. Errors are of type *Error.
func (ev *Evaluator) Eval(line string) (charset.CharSet, error) {
	toks, err := tokenize(line)
	if err != nil {
		return charset.CharSet{}, err
	}
	p := &parser{ev: ev, toks: toks, line: line}
	cs, err := p.statement()
	if err != nil {
		tracer().Debugf("eval error: %v", err)
		return charset.CharSet{}, err
	}
	tracer().Debugf("%s => %v", line, cs)
	return cs, nil
}

// --- Recursive descent -----------------------------------------------------

type parser struct {
	ev   *Evaluator
	toks []runeclass.Token
	pos  int
	line string
}

func (p *parser) peek() runeclass.Token {
	return p.toks[p.pos]
}

func (p *parser) lookahead(n int) runeclass.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) next() runeclass.Token {
	tok := p.toks[p.pos]
	if tok.TokType() != EOF {
		p.pos++
	}
	return tok
}

func (p *parser) is(tt runeclass.TokType) bool {
	return p.peek().TokType() == tt
}

func (p *parser) expect(tt runeclass.TokType, what string) (runeclass.Token, error) {
	if !p.is(tt) {
		return nil, p.unexpected(what)
	}
	return p.next(), nil
}

func (p *parser) unexpected(what string) *Error {
	tok := p.peek()
	if tok.TokType() == EOF {
		return errorf(ErrSyntax, tok.Span(), "expected %s, found end of input", what)
	}
	return errorf(ErrSyntax, tok.Span(), "expected %s, found %q", what, tok.Lexeme())
}

// source returns the input text from position from up to the last token read.
func (p *parser) source(from uint64) string {
	if p.pos == 0 {
		return ""
	}
	return p.line[from:p.toks[p.pos-1].Span().To()]
}

// stmt := IDENT '=' expr | expr
func (p *parser) statement() (charset.CharSet, error) {
	if p.is(EOF) {
		return charset.CharSet{}, p.unexpected("expression")
	}
	var name runeclass.Token
	if p.is(Ident) && p.lookahead(1).TokType() == '=' {
		name = p.next()
		p.next()
	}
	from := p.peek().Span().From()
	cs, err := p.expr()
	if err != nil {
		return cs, err
	}
	if !p.is(EOF) {
		return cs, p.unexpected("operator")
	}
	if name != nil {
		scope := p.ev.rt.ScopeTree.Current()
		tag := scope.Bind(name.Lexeme(), cs)
		tag.UData = p.source(from)
		tracer().Debugf("%s = %v in %v", name.Lexeme(), cs, scope)
	}
	return cs, nil
}

// expr := term { ('|' | '-') term }
func (p *parser) expr() (charset.CharSet, error) {
	cs, err := p.term()
	if err != nil {
		return cs, err
	}
	for p.is('|') || p.is('-') {
		op := p.next().TokType()
		rhs, err := p.term()
		if err != nil {
			return cs, err
		}
		if op == '|' {
			cs = charset.Union(cs, rhs)
		} else {
			cs = charset.Subtraction(cs, rhs)
		}
	}
	return cs, nil
}

// term := unary { '&' unary }
func (p *parser) term() (charset.CharSet, error) {
	cs, err := p.unary()
	if err != nil {
		return cs, err
	}
	for p.is('&') {
		p.next()
		rhs, err := p.unary()
		if err != nil {
			return cs, err
		}
		cs = charset.Intersection(cs, rhs)
	}
	return cs, nil
}

// unary := '~' unary | atom
func (p *parser) unary() (charset.CharSet, error) {
	if p.is('~') {
		p.next()
		cs, err := p.unary()
		if err != nil {
			return cs, err
		}
		return cs.Complement(), nil
	}
	return p.atom()
}

// atom := '(' expr ')' | '[' bound { bound } ']' | IDENT | char [ '..' char ]
func (p *parser) atom() (charset.CharSet, error) {
	switch p.peek().TokType() {
	case '(':
		p.next()
		cs, err := p.expr()
		if err != nil {
			return cs, err
		}
		_, err = p.expect(')', "')'")
		return cs, err
	case '[':
		return p.boundaries()
	case Ident:
		tok := p.next()
		cs, ok := p.ev.Lookup(tok.Lexeme())
		if !ok {
			return cs, errorf(ErrUndefined, tok.Span(), "%s", tok.Lexeme())
		}
		return cs, nil
	case Num, Char:
		return p.charRange()
	}
	return charset.CharSet{}, p.unexpected("character set")
}

// char [ '..' char ]
func (p *parser) charRange() (charset.CharSet, error) {
	first := p.next()
	lo, err := p.char(first)
	if err != nil {
		return charset.CharSet{}, err
	}
	if !p.is(DotDot) {
		return charset.Runes(lo), nil
	}
	p.next()
	if !p.is(Num) && !p.is(Char) {
		return charset.CharSet{}, p.unexpected("code point")
	}
	last := p.next()
	hi, err := p.char(last)
	if err != nil {
		return charset.CharSet{}, err
	}
	if hi < lo {
		return charset.CharSet{}, errorf(ErrSyntax, first.Span().Extend(last.Span()),
			"range %#x..%#x is reversed", lo, hi)
	}
	return charset.Range(lo, hi+1), nil
}

func (p *parser) char(tok runeclass.Token) (rune, error) {
	n, err := number(tok)
	if err != nil {
		return 0, err
	}
	if n >= uint64(charset.UpperBound) {
		return 0, &Error{
			Err:  fmt.Errorf("%w: %s", charset.ErrInvalidCodepoint, tok.Lexeme()),
			Span: tok.Span(),
		}
	}
	return rune(n), nil
}

// '[' bound { bound } ']'
func (p *parser) boundaries() (charset.CharSet, error) {
	open := p.next()
	var bounds []rune
	n := 0
	for p.is(Num) || p.is(Char) {
		tok := p.next()
		b, err := number(tok)
		if err != nil {
			return charset.CharSet{}, err
		}
		n++
		if b > math.MaxInt32 { // not representable as a rune
			if p.ev.strict {
				return charset.CharSet{}, &Error{
					Err:  fmt.Errorf("%w: %s", charset.ErrInvalidBoundary, tok.Lexeme()),
					Span: tok.Span(),
				}
			}
			tracer().Debugf("dropping boundary %s", tok.Lexeme())
			continue
		}
		bounds = append(bounds, rune(b))
	}
	if n == 0 {
		return charset.CharSet{}, p.unexpected("boundary")
	}
	closing, err := p.expect(']', "']'")
	if err != nil {
		return charset.CharSet{}, err
	}
	if !p.ev.strict {
		return charset.New(bounds...), nil
	}
	cs, err := charset.NewStrict(bounds...)
	if err != nil {
		return cs, &Error{Err: err, Span: open.Span().Extend(closing.Span())}
	}
	return cs, nil
}
