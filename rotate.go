package rbtree

import "github.com/sirupsen/logrus"

// rotate restructures current upward past its parent by one level,
// preserving the in-order sequence. The direction follows from the
// child side: a right child is rotated left, a left child is rotated
// right. Rotating the root is a no-op. Colors are never touched here;
// callers recolor separately.
func (t *Tree[T]) rotate(current *Node[T]) {
	parent := current.parent
	if parent == nil {
		return
	}

	switch current {
	case parent.right: // left rotation
		// middle subtree moves from current to parent
		parent.right = current.left
		if parent.right != nil {
			parent.right.parent = parent
		}

		if t.root == parent {
			t.root = current
			current.parent = nil
		} else {
			grandparent := parent.parent
			if grandparent.left == parent {
				grandparent.left = current
			} else {
				grandparent.right = current
			}
			current.parent = grandparent
		}

		current.left = parent
		parent.parent = current

	case parent.left: // right rotation
		parent.left = current.right
		if parent.left != nil {
			parent.left.parent = parent
		}

		if t.root == parent {
			t.root = current
			current.parent = nil
		} else {
			grandparent := parent.parent
			if grandparent.left == parent {
				grandparent.left = current
			} else {
				grandparent.right = current
			}
			current.parent = grandparent
		}

		current.right = parent
		parent.parent = current

	default:
		// parent does not own current: the tree is corrupted and no
		// public-API sequence can produce this state
		logrus.Panicf("rbtree: rotate on inconsistent link: node = %+v, parent = %+v", current, parent)
	}
}
