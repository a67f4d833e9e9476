package rollin

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// Token is a lexical unit of an expression.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Text is the source text of the token.
	Text string
	// Value is the value of a TokenNumber. It is zero for all other kinds.
	Value float64
	// Pos is the 1-based column of the first character of the token.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenNumber is a run of decimal digits.
	TokenNumber
	// TokenAdd is +.
	TokenAdd
	// TokenSub is -.
	TokenSub
	// TokenMul is *.
	TokenMul
	// TokenDiv is /.
	TokenDiv
	// TokenDice is d.
	TokenDice
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenAdd:
		return "Add"
	case TokenSub:
		return "Sub"
	case TokenMul:
		return "Mul"
	case TokenDiv:
		return "Div"
	case TokenDice:
		return "Dice"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/d"

// lexdef tries each rule in order at the front of the remaining input.
// Whitespace is not a token.
var lexdef = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Add", Pattern: `\+`},
	{Name: "Sub", Pattern: `-`},
	{Name: "Mul", Pattern: `\*`},
	{Name: "Div", Pattern: `/`},
	{Name: "Dice", Pattern: `d`},
})

var symkinds = func() map[lexer.TokenType]TokenKind {
	sym := lexdef.Symbols()
	return map[lexer.TokenType]TokenKind{
		sym["Number"]: TokenNumber,
		sym["Add"]:    TokenAdd,
		sym["Sub"]:    TokenSub,
		sym["Mul"]:    TokenMul,
		sym["Div"]:    TokenDiv,
		sym["Dice"]:   TokenDice,
	}
}()

// Tokenize splits src into tokens. If any part of src is not a token,
// including any whitespace, the result is nil and a *LexError. An empty src is
// also an invalid token.
func Tokenize(src string) ([]Token, error) {
	lex, err := lexdef.Lex("", strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	var toks []Token
	// Tokens are contiguous, so the end of the last token is where the lexer
	// failed if it fails.
	off := 0
	for {
		t, err := lex.Next()
		if err != nil {
			return nil, invalidAt(src, off)
		}
		if t.EOF() {
			break
		}
		kind, ok := symkinds[t.Type]
		if !ok {
			panic("rollin: unknown lexer symbol " + strconv.Itoa(int(t.Type)))
		}
		tok := Token{Kind: kind, Text: t.Value, Pos: off + 1}
		if kind == TokenNumber {
			tok.Value = parsenum(t.Value)
		}
		toks = append(toks, tok)
		off += len(t.Value)
	}
	if len(toks) == 0 {
		return nil, &LexError{Col: 1}
	}
	return toks, nil
}

// parsenum parses a run of decimal digits. Runs too large for a float64 are
// +Inf.
func parsenum(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("rollin: invalid number: " + s + " (" + err.Error() + ")")
	}
	return v
}

// invalidAt creates a LexError for the rune at byte offset off in src.
func invalidAt(src string, off int) error {
	r, _ := utf8.DecodeRuneInString(src[off:])
	return &LexError{
		Text: string(r),
		Col:  utf8.RuneCountInString(src[:off]) + 1,
	}
}

// LexError indicates an invalid token. It implements InputError and unwraps
// to ErrInvalidToken.
type LexError struct {
	// Text is the rune that does not begin any token. It is empty if the
	// input was empty.
	Text string
	// Col is the 1-based column of the invalid rune.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Text == "" {
		return "invalid token at " + pos + ": empty expression"
	}
	return "invalid token at " + pos + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Unwrap() error {
	return ErrInvalidToken
}
