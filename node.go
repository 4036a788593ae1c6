package rbtree

// Color is the red-black node color.
type Color uint8

const (
	Red   Color = 0
	Black Color = 1
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Node is a single tree node. The tree owns its nodes through root and
// the left/right links; parent is a back-reference only and always
// mirrors the owning link (node.parent.left == node or
// node.parent.right == node, nil iff node is the root).
type Node[T any] struct {
	value  T
	color  Color
	left   *Node[T]
	right  *Node[T]
	parent *Node[T]
}

// Value returns the stored value.
func (n *Node[T]) Value() T { return n.value }

// Color returns the node color.
func (n *Node[T]) Color() Color { return n.color }

func isRed[T any](n *Node[T]) bool {
	return n != nil && n.color == Red
}

func isBlack[T any](n *Node[T]) bool {
	return n == nil || n.color == Black
}
