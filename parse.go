package rollin

import (
	"strings"
)

// Expr = num | Sum | Product | Roll
// Sum = [Expr] ('+' | '-') Expr
// Product = Expr ('*' | '/') Expr
// Roll = [Expr] 'd' Expr
//
// Precedence is decided by position, not by climbing: a sequence splits at its
// leftmost + or -, else at its leftmost * or /, else at its leftmost d. So
// "1-2+3" is 1-(2+3), "10/2/5" is 10/(2/5), and "3*-2" is a syntax error
// because the split at - leaves "3*" on the left.

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse tokenizes and parses an expression so it can be evaluated with a
// context.
func Parse(src string) (*Expr, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks)
}

// ParseTokens parses a token sequence as produced by Tokenize. toks is not
// modified or retained.
func ParseTokens(toks []Token) (*Expr, error) {
	n, err := build(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// build creates the AST for a contiguous token sequence. Each recursive call
// receives its own subslice; there is no shared cursor.
func build(toks []Token) (*node, error) {
	if len(toks) == 1 && toks[0].Kind == TokenNumber {
		return &node{kind: nodeNum, text: toks[0].Text, num: toks[0].Value}, nil
	}

	if i := leftmost(toks, TokenAdd, TokenSub); i >= 0 {
		left, right := toks[:i], toks[i+1:]
		if len(right) == 0 {
			return nil, &SyntaxError{Col: toks[i].Pos, Token: toks[i].Text, Missing: "right"}
		}
		l := lit(0)
		if len(left) != 0 {
			var err error
			if l, err = build(left); err != nil {
				return nil, err
			}
		}
		r, err := build(right)
		if err != nil {
			return nil, err
		}
		if toks[i].Kind == TokenSub {
			r = &node{kind: nodeNeg, left: r}
		}
		return &node{kind: nodeAdd, left: l, right: r}, nil
	}

	if i := leftmost(toks, TokenMul, TokenDiv); i >= 0 {
		left, right := toks[:i], toks[i+1:]
		switch {
		case len(left) == 0:
			return nil, &SyntaxError{Col: toks[i].Pos, Token: toks[i].Text, Missing: "left"}
		case len(right) == 0:
			return nil, &SyntaxError{Col: toks[i].Pos, Token: toks[i].Text, Missing: "right"}
		}
		l, err := build(left)
		if err != nil {
			return nil, err
		}
		r, err := build(right)
		if err != nil {
			return nil, err
		}
		if toks[i].Kind == TokenDiv {
			r = &node{kind: nodeRecip, left: r}
		}
		return &node{kind: nodeMul, left: l, right: r}, nil
	}

	if i := leftmost(toks, TokenDice); i >= 0 {
		left, right := toks[:i], toks[i+1:]
		if len(right) == 0 {
			return nil, &SyntaxError{Col: toks[i].Pos, Token: toks[i].Text, Missing: "right"}
		}
		l := lit(1)
		if len(left) != 0 {
			var err error
			if l, err = build(left); err != nil {
				return nil, err
			}
		}
		r, err := build(right)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeRoll, left: l, right: r}, nil
	}

	// No operators. Tokenize never produces adjacent numbers, but
	// ParseTokens accepts arbitrary sequences.
	switch len(toks) {
	case 0:
		return nil, &SyntaxError{Col: 1}
	case 1:
		return nil, &SyntaxError{Col: toks[0].Pos, Token: toks[0].Text}
	default:
		return nil, &SyntaxError{Col: toks[1].Pos, Token: toks[1].Text}
	}
}

// leftmost returns the index of the first token in toks having any of the
// given kinds, or -1 if there is none.
func leftmost(toks []Token, kinds ...TokenKind) int {
	for i, tok := range toks {
		for _, k := range kinds {
			if tok.Kind == k {
				return i
			}
		}
	}
	return -1
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}
