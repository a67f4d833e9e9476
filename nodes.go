package rollin

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	text string
	num  float64

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // num

	nodeNeg   // evaluate left, then negate
	nodeRecip // evaluate left, then take reciprocal
	nodeAdd   // evaluate left, add right
	nodeMul   // evaluate left, mul right
	nodeRoll  // evaluate left as count, right as sides, sum rolls
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeNeg:
		return "Neg"
	case nodeRecip:
		return "Recip"
	case nodeAdd:
		return "Add"
	case nodeMul:
		return "Mul"
	case nodeRoll:
		return "Roll"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// lit creates a literal node for an operand that the source leaves implicit,
// e.g. the 0 in -x or the 1 in d6.
func lit(v float64) *node {
	return &node{kind: nodeNum, text: strconv.FormatFloat(v, 'f', -1, 64), num: v}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, !square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, !square)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.text)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeRecip:
		b.WriteString("1/")
		n.left.fmt(b, !square)
	case nodeAdd:
		n.left.fmt(b, !square)
		b.WriteString(" + ")
		n.right.fmt(b, !square)
	case nodeMul:
		n.left.fmt(b, !square)
		b.WriteString(" * ")
		n.right.fmt(b, !square)
	case nodeRoll:
		n.left.fmt(b, !square)
		b.WriteByte('d')
		n.right.fmt(b, !square)
	default:
		panic("rollin: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
