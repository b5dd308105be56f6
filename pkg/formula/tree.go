package formula

import (
	"slices"
	"strings"
)

// Node is an expression tree node. Leaves hold an input number and its
// position in Formula.Numbers; inner nodes hold an operator, two children
// and the value of their subexpression.
type Node[N Number[N]] struct {
	Op          Operator
	Left, Right *Node[N]
	Value       N
	Index       int // input position for leaves, -1 otherwise
}

// Tree builds the expression tree of the current configuration by the same
// contraction as Evaluate. It fails wherever Evaluate fails.
func (f *Formula[V]) Tree() (*Node[V], error) {
	leaves := make([]*Node[V], len(f.nums))
	for i, v := range f.nums {
		leaves[i] = &Node[V]{Value: v, Index: i}
	}
	return contract(f.pairs, f.ops.Values(), leaves, func(_ int, op Operator, left, right *Node[V]) (*Node[V], error) {
		v, err := Apply(op, left.Value, right.Value)
		if err != nil {
			return nil, err
		}
		return &Node[V]{Op: op, Left: left, Right: right, Value: v, Index: -1}, nil
	})
}

// IsLeaf reports whether n is an input number.
func (n *Node[N]) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Walk calls fn for every node in post-order: children before parents, left
// before right.
func (n *Node[N]) Walk(fn func(*Node[N])) {
	if n == nil {
		return
	}
	n.Left.Walk(fn)
	n.Right.Walk(fn)
	fn(n)
}

// Depth returns the number of operators on the longest root-to-leaf path.
func (n *Node[N]) Depth() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// Trace replays the tree as contraction steps in post-order, the order in
// which a reader would compute it by hand.
func (n *Node[N]) Trace() Trace[N] {
	var t Trace[N]
	n.Walk(func(x *Node[N]) {
		if !x.IsLeaf() {
			t = append(t, Step[N]{Left: x.Left.Value, Op: x.Op, Right: x.Right.Value, Result: x.Value})
		}
	})
	return t
}

// Leaves returns the input positions in left-to-right order.
func (n *Node[N]) Leaves() []int {
	var out []int
	n.Walk(func(x *Node[N]) {
		if x.IsLeaf() {
			out = append(out, x.Index)
		}
	})
	return slices.Clip(out)
}

// String renders the expression in infix with the fewest parentheses that
// keep its meaning: a child is parenthesised when it binds looser than its
// parent, or equally loose on the right of - or /.
func (n *Node[N]) String() string {
	var b strings.Builder
	n.format(&b)
	return b.String()
}

func (n *Node[N]) format(b *strings.Builder) {
	if n.IsLeaf() {
		s := n.Value.String()
		if strings.HasPrefix(s, "-") || strings.Contains(s, "/") {
			b.WriteString("(" + s + ")")
			return
		}
		b.WriteString(s)
		return
	}
	p := precedence(n)
	writeChild(b, n.Left, precedence(n.Left) < p)
	b.WriteString(" " + n.Op.Symbol() + " ")
	rp := precedence(n.Right)
	writeChild(b, n.Right, rp < p || (rp == p && (n.Op == Sub || n.Op == Div)))
}

func writeChild[N Number[N]](b *strings.Builder, child *Node[N], paren bool) {
	if paren {
		b.WriteByte('(')
	}
	child.format(b)
	if paren {
		b.WriteByte(')')
	}
}

func precedence[N Number[N]](n *Node[N]) int {
	if n.IsLeaf() {
		return 3
	}
	switch n.Op {
	case Mul, Div:
		return 2
	default:
		return 1
	}
}
