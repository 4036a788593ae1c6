package rbtree

import "cmp"

// Tree is a red-black tree over values of type T. The comparator
// supplied at construction defines the total order; equal values are
// permitted and land in the right subtree.
//
// Tree is not safe for concurrent use.
type Tree[T any] struct {
	root        *Node[T]
	cmp         func(a, b T) int
	size        int
	blackHeight int
}

// New creates an empty tree ordered by cmp, which must return a value
// <0, 0, or >0 when a is less than, equal to, or greater than b.
func New[T any](cmp func(a, b T) int) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

// NewOrdered creates an empty tree over a naturally ordered type.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return New(cmp.Compare[T])
}

// Size returns the number of values currently stored.
func (t *Tree[T]) Size() int { return t.size }

// BlackHeight returns the tracked black-node count on any root-to-leaf
// path. It is maintained incrementally, never recomputed.
func (t *Tree[T]) BlackHeight() int { return t.blackHeight }

// Clear resets the tree to empty.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
	t.blackHeight = 0
}

// Search returns the node holding value, or nil when absent. With
// duplicates present it returns the first match on the descent path.
func (t *Tree[T]) Search(value T) *Node[T] {
	current := t.root
	for current != nil {
		c := t.cmp(value, current.value)
		if c == 0 {
			return current
		}
		if c < 0 {
			current = current.left
		} else {
			current = current.right
		}
	}
	return nil
}

// Min returns the smallest stored value, or false when the tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the largest stored value, or false when the tree is empty.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// Height returns the node count on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}
