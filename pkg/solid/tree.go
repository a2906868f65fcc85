package solid

import "fmt"

// Node is one node of a boolean composition tree. Leaves hold bodies;
// internal nodes hold an operation over two subtrees. The tree makes
// evaluation order explicit, which matters because subtraction is not
// commutative.
type Node interface {
	compose() (*Body, error)
}

type leaf struct {
	body *Body
}

func (n leaf) compose() (*Body, error) {
	if n.body == nil {
		return nil, fmt.Errorf("solid: compose: nil leaf body")
	}
	return n.body, nil
}

type opNode struct {
	op   string
	l, r Node
}

func (n opNode) compose() (*Body, error) {
	a, err := n.l.compose()
	if err != nil {
		return nil, err
	}
	b, err := n.r.compose()
	if err != nil {
		return nil, err
	}
	switch n.op {
	case "union":
		return a.Union(b), nil
	case "subtract":
		return a.Subtract(b), nil
	case "intersect":
		c, err := a.Intersect(b)
		if err != nil {
			return nil, fmt.Errorf("solid: compose intersect: %w", err)
		}
		return c, nil
	}
	return nil, fmt.Errorf("solid: compose: unknown operation %q", n.op)
}

// Leaf wraps a body as a tree leaf.
func Leaf(b *Body) Node { return leaf{body: b} }

// UnionOf joins two subtrees with a union.
func UnionOf(l, r Node) Node { return opNode{op: "union", l: l, r: r} }

// SubtractOf removes the right subtree's volume from the left's.
func SubtractOf(l, r Node) Node { return opNode{op: "subtract", l: l, r: r} }

// IntersectOf keeps the volume shared by both subtrees.
func IntersectOf(l, r Node) Node { return opNode{op: "intersect", l: l, r: r} }

// Compose evaluates the tree bottom-up and returns the resulting body.
func Compose(root Node) (*Body, error) {
	if root == nil {
		return nil, fmt.Errorf("solid: compose: nil tree")
	}
	return root.compose()
}
