package scanner

import (
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/runeclass/charset"
	"github.com/npillmayer/runeclass/partition"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"a|b",
	"digit = ['0' 0x3a]",
	`x - y # commented `,
	"'a'..'z' & ~vowels",
}

var tokenCounts = []int{1, 3, 6, 3, 6}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runeclass.scanner")
	defer teardown()
	//
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`\#[^\n]*\n?`), Skip)
		lexer.Add([]byte(`'[^']+'`), MakeToken("CHAR", tokenIds["CHAR"]))
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`0x([0-9]|[a-f]|[A-F])+|[0-9]+`), MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, nil, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		sc.SetErrorHandler(func(e error) { t.Error(e) })
		token := sc.NextToken()
		count := 0
		for token.TokType() != EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			if input[token.Span().From():token.Span().To()] != token.Lexeme() {
				t.Errorf("span %v does not match lexeme %q", token.Span(), token.Lexeme())
			}
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
		if token.Span().From() != uint64(len(input)) {
			t.Errorf("expected EOF at position %d, is at %d", len(input), token.Span().From())
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runeclass.scanner")
	defer teardown()
	//
	initTokens()
	LM, err := NewLMAdapter(func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[0-9]+`), MakeToken("NUM", tokenIds["NUM"]))
	}, nil, nil, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("12$34")
	errcnt := 0
	sc.SetErrorHandler(func(e error) { errcnt++ })
	count := 0
	for token := sc.NextToken(); token.TokType() != EOF; token = sc.NextToken() {
		count++
	}
	if count != 2 || errcnt != 1 {
		t.Errorf("expected 2 tokens and 1 error, have %d and %d", count, errcnt)
	}
}

var literals []string       // The tokens representing literal strings
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{"(", ")", "[", "]", "=", "|", "&", "-", "~", ".."}
	tokenIds = make(map[string]int)
	tokenIds["COMMENT"] = Comment
	tokenIds["ID"] = Ident
	tokenIds["NUM"] = Int
	tokenIds["CHAR"] = Char
	for i, lit := range literals {
		tokenIds[lit] = i + 10
	}
}

// ---------------------------------------------------------------------------

func TestCatSeqReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runeclass.scanner")
	defer teardown()
	//
	for i, test := range []struct {
		input string
		cat   CatCode
		l     int
	}{
		{input: "abc ;", cat: 1, l: 3},
		{input: "123 ;", cat: 2, l: 3},
		{input: ">= ;", cat: 3, l: 2},
		{input: "äöü;", cat: 1, l: 3},
		{input: "();", cat: IllegalCatCode, l: 1},
	} {
		strm := NewCatSeqReader(strings.NewReader(test.input))
		csq, err := strm.Next(testCategorizer())
		if err != nil {
			t.Error(err)
		}
		if csq.Length != test.l || csq.Cat != test.cat {
			t.Errorf("test %d failed: exepected %d|%d, have %d|%d", i+1, test.cat, test.l, csq.Cat, csq.Length)
		}
		if n := strm.Span().Len(); n != uint64(len(strm.OutputString())) {
			t.Errorf("test %d: span length %d does not match output %q", i+1, n, strm.OutputString())
		}
	}
}

func TestCatSeqReaderRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runeclass.scanner")
	defer teardown()
	//
	strm := NewCatSeqReader(strings.NewReader("ab12>=x"))
	var runs []string
	for {
		_, err := strm.Next(testCategorizer())
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
		runs = append(runs, strm.OutputString())
	}
	if strings.Join(runs, "|") != "ab|12|>=|x" {
		t.Errorf("expected runs ab|12|>=|x, have %v", runs)
	}
}

func TestAlphabetCategorizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runeclass.scanner")
	defer teardown()
	//
	digit := charset.Range('0', '9'+1)
	hex := charset.UnionAll(digit, charset.Range('a', 'f'+1))
	ac := AlphabetCategorizer(partition.NewAlphabet(digit, hex))
	strm := NewCatSeqReader(strings.NewReader("0x1fzz"))
	var lengths []int
	for {
		csq, err := strm.Next(ac)
		if err != nil {
			break
		}
		lengths = append(lengths, csq.Length)
	}
	// 0 | x | 1 | f | zz
	if len(lengths) != 5 || lengths[4] != 2 {
		t.Errorf("unexpected run lengths %v", lengths)
	}
	if c, _ := ac.Cat('0'); c == IllegalCatCode {
		t.Errorf("valid code point categorized as illegal")
	}
	if c, loner := ac.Cat(-1); c != IllegalCatCode || !loner {
		t.Errorf("invalid code point should be an illegal loner")
	}
}

func testCategorizer() RuneCategorizer {
	letters := charset.Union(charset.Range('a', 'z'+1), charset.Range(0xe0, 0x100))
	return SetCategorizer(letters, charset.Range('0', '9'+1), charset.Runes('<', '=', '>'))
}
