package rollin

import (
	"io"
	"math"
)

// Context is a context for evaluating expressions. A Context whose Source is
// not safe for concurrent use, including any created with Seed, is not safe to
// use concurrently.
type Context struct {
	src Source
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	randopt struct {
		src Source
	}
	seedopt int64
)

func (randopt) ctxOption() {}
func (seedopt) ctxOption() {}

// Rand sets the source of randomness for dice rolls.
func Rand(src Source) ContextOption {
	return randopt{src}
}

// Seed sets the source of randomness for dice rolls to a new generator with
// the given seed, so that the same expressions roll the same values.
func Seed(seed int64) ContextOption {
	return seedopt(seed)
}

// NewContext creates a new evaluation context. If no source is given, the
// default is the process-wide generator of package math/rand.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{src: globalSource{}}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it. The copy uses
// the same Source unless an option replaces it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{src: ctx.src}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case randopt:
			if opt.src != nil {
				n.src = opt.src
			}
		case seedopt:
			n.src = seeded(int64(opt))
		default:
			panic("rollin: unknown option type")
		}
	}
	return &n
}

// Eval evaluates an expression and returns the result. Division by zero is
// not an error; the result follows IEEE 754, e.g. 1/0 is +Inf and 0/0 is NaN.
func (ctx *Context) Eval(e *Expr) float64 {
	return e.n.eval(ctx)
}

// Eval evaluates the expression using ctx. It is the same as ctx.Eval(e).
func (e *Expr) Eval(ctx *Context) float64 {
	return ctx.Eval(e)
}

// eval reduces the node to its value.
func (n *node) eval(ctx *Context) float64 {
	switch n.kind {
	case nodeNum:
		return n.num
	case nodeNeg:
		return -n.left.eval(ctx)
	case nodeRecip:
		return 1 / n.left.eval(ctx)
	case nodeAdd:
		l := n.left.eval(ctx)
		r := n.right.eval(ctx)
		return l + r
	case nodeMul:
		l := n.left.eval(ctx)
		r := n.right.eval(ctx)
		return l * r
	case nodeRoll:
		count := n.left.eval(ctx)
		sides := n.right.eval(ctx)
		return ctx.roll(count, sides)
	default:
		panic("rollin: invalid AST node " + n.kind.String())
	}
}

// roll sums count rolls of a die with the given number of sides. A count that
// is not positive rolls no dice. The result for sides < 1 is whatever the
// arithmetic produces; no die is defined for it.
func (ctx *Context) roll(count, sides float64) float64 {
	var sum float64
	for i := 0.0; i < count; i++ {
		sum += math.Floor(ctx.src.Float64()*sides) + 1
	}
	return sum
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.Reader, opts ...ContextOption) (float64, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return 0, err
	}
	return EvalString(string(b), opts...)
}

// EvalString is a shortcut to parse and evaluate a string expression. The
// error, if any, is a *LexError or a *SyntaxError.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return NewContext(opts...).Eval(a), nil
}
