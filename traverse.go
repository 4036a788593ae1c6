package rbtree

import (
	"fmt"
	"io"
	"strings"
)

// Inorder visits every node in ascending value order, reporting its
// color and depth (root is depth 0). Returning false from fn stops the
// traversal.
func (t *Tree[T]) Inorder(fn func(value T, color Color, depth int) bool) {
	inorderOf(t.root, 0, fn)
}

func inorderOf[T any](n *Node[T], depth int, fn func(T, Color, int) bool) bool {
	if n == nil {
		return true
	}
	if !inorderOf(n.left, depth+1, fn) {
		return false
	}
	if !fn(n.value, n.color, depth) {
		return false
	}
	return inorderOf(n.right, depth+1, fn)
}

// Breadth visits the tree level by level. Children of visited nodes
// that are absent are reported as explicit gaps with nilGap true (and a
// zero value). Returning false from fn stops the traversal.
func (t *Tree[T]) Breadth(fn func(value T, color Color, depth int, nilGap bool) bool) {
	type item struct {
		node  *Node[T]
		depth int
	}
	queue := []item{{t.root, 0}}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		if it.node == nil {
			var zero T
			if !fn(zero, Black, it.depth, true) {
				return
			}
			continue
		}

		queue = append(queue,
			item{it.node.left, it.depth + 1},
			item{it.node.right, it.depth + 1},
		)
		if !fn(it.node.value, it.node.color, it.depth, false) {
			return
		}
	}
}

// FprintInorder writes one "value, color, depth" line per node to w in
// ascending order, color printed as 0 (red) or 1 (black).
func (t *Tree[T]) FprintInorder(w io.Writer) error {
	var err error
	t.Inorder(func(v T, c Color, depth int) bool {
		_, err = fmt.Fprintf(w, "%v, %d, %d\n", v, c, depth)
		return err == nil
	})
	return err
}

// FprintBreadth writes the level-order view to w, one line per depth,
// "(value, color, depth)" tuples joined by " , ", with "nil" marking
// the absent children of visited nodes.
func (t *Tree[T]) FprintBreadth(w io.Writer) error {
	var line []string
	lineDepth := 0
	var err error

	flush := func() bool {
		if len(line) == 0 {
			return true
		}
		_, err = fmt.Fprintln(w, strings.Join(line, " , "))
		line = line[:0]
		return err == nil
	}

	t.Breadth(func(v T, c Color, depth int, nilGap bool) bool {
		if depth != lineDepth && !flush() {
			return false
		}
		lineDepth = depth
		if nilGap {
			line = append(line, "nil")
		} else {
			line = append(line, fmt.Sprintf("(%v, %d, %d)", v, c, depth))
		}
		return true
	})
	if err != nil {
		return err
	}
	flush()
	return err
}
