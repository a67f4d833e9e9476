package rollin

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
	}{
		// numbers
		{"0", []Token{{Kind: TokenNumber, Text: "0", Value: 0, Pos: 1}}},
		{"9876543210", []Token{{Kind: TokenNumber, Text: "9876543210", Value: 9876543210, Pos: 1}}},
		{"007", []Token{{Kind: TokenNumber, Text: "007", Value: 7, Pos: 1}}},
		// operators
		{"+", []Token{{Kind: TokenAdd, Text: "+", Pos: 1}}},
		{"-", []Token{{Kind: TokenSub, Text: "-", Pos: 1}}},
		{"*", []Token{{Kind: TokenMul, Text: "*", Pos: 1}}},
		{"/", []Token{{Kind: TokenDiv, Text: "/", Pos: 1}}},
		{"d", []Token{{Kind: TokenDice, Text: "d", Pos: 1}}},
		{"++", []Token{{Kind: TokenAdd, Text: "+", Pos: 1}, {Kind: TokenAdd, Text: "+", Pos: 2}}},
		// expressions
		{"1+0", []Token{
			{Kind: TokenNumber, Text: "1", Value: 1, Pos: 1},
			{Kind: TokenAdd, Text: "+", Pos: 2},
			{Kind: TokenNumber, Text: "0", Value: 0, Pos: 3},
		}},
		{"12d34", []Token{
			{Kind: TokenNumber, Text: "12", Value: 12, Pos: 1},
			{Kind: TokenDice, Text: "d", Pos: 3},
			{Kind: TokenNumber, Text: "34", Value: 34, Pos: 4},
		}},
		{"-d20/4*2", []Token{
			{Kind: TokenSub, Text: "-", Pos: 1},
			{Kind: TokenDice, Text: "d", Pos: 2},
			{Kind: TokenNumber, Text: "20", Value: 20, Pos: 3},
			{Kind: TokenDiv, Text: "/", Pos: 5},
			{Kind: TokenNumber, Text: "4", Value: 4, Pos: 6},
			{Kind: TokenMul, Text: "*", Pos: 7},
			{Kind: TokenNumber, Text: "2", Value: 2, Pos: 8},
		}},
		// tokenization does not check syntax
		{"3*-2", []Token{
			{Kind: TokenNumber, Text: "3", Value: 3, Pos: 1},
			{Kind: TokenMul, Text: "*", Pos: 2},
			{Kind: TokenSub, Text: "-", Pos: 3},
			{Kind: TokenNumber, Text: "2", Value: 2, Pos: 4},
		}},
	}
	for _, c := range cases {
		got, err := Tokenize(c.src)
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if !reflect.DeepEqual(got, c.tokens) {
			t.Errorf("scanning %q:\n\twant %v\n\tgot  %v", c.src, c.tokens, got)
		}
	}
}

func TestLexHuge(t *testing.T) {
	src := strings.Repeat("9", 400)
	toks, err := Tokenize(src)
	if err != nil {
		t.Fatalf("scanning %d nines: %v", len(src), err)
	}
	if len(toks) != 1 || !math.IsInf(toks[0].Value, 1) {
		t.Errorf("%d nines should be one +Inf number, got %v", len(src), toks)
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
		text string
	}{
		{"empty", "", 1, ""},
		{"space", " ", 1, " "},
		{"trailing-space", "1 ", 2, " "},
		{"inner-space", "1 + 2", 2, " "},
		{"tab", "\t1", 1, "\t"},
		{"newline", "1\n", 2, "\n"},
		{"decimal", "1.5", 2, "."},
		{"paren", "(1)", 1, "("},
		{"letter", "2x3", 2, "x"},
		{"upper-dice", "2D6", 2, "D"},
		{"unicode", "1×2", 2, "×"},
		{"late", "1+2+3d6$", 8, "$"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			if err == nil {
				t.Fatalf("scanning %q gave no error and %v", c.src, toks)
			}
			if toks != nil {
				t.Errorf("scanning %q gave partial tokens %v", c.src, toks)
			}
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("%v is not ErrInvalidToken", err)
			}
			var le *LexError
			if !errors.As(err, &le) {
				t.Fatalf("%#v is not *LexError", err)
			}
			if le.Col != c.col {
				t.Errorf("scanning %q: want column %d, got %d", c.src, c.col, le.Col)
			}
			if le.Text != c.text {
				t.Errorf("scanning %q: want text %q, got %q", c.src, c.text, le.Text)
			}
		})
	}
}

func TestOperatorsLex(t *testing.T) {
	for _, r := range Operators {
		toks, err := Tokenize(string(r))
		if err != nil {
			t.Errorf("operator %c doesn't lex: %v", r, err)
			continue
		}
		if len(toks) != 1 || toks[0].Kind == TokenNumber {
			t.Errorf("operator %c lexes as %v", r, toks)
		}
	}
}
