package rbtree

import "github.com/pkg/errors"

// Verify scans the whole tree and reports the first violated red-black
// invariant: BST order (in-order values non-decreasing; duplicates
// enter on the right but rotations may carry an equal value into a
// left subtree), black root, no red node with a red child, uniform
// black-height equal to the tracked counter, and parent/child link
// consistency. It returns nil on a healthy tree and is meant for tests
// and diagnostics.
func (t *Tree[T]) Verify() error {
	if t.root == nil {
		if t.blackHeight != 0 {
			return errors.Errorf("empty tree has black-height %d", t.blackHeight)
		}
		if t.size != 0 {
			return errors.Errorf("empty tree has size %d", t.size)
		}
		return nil
	}

	if t.root.color != Black {
		return errors.New("root is not black")
	}
	if t.root.parent != nil {
		return errors.New("root has a non-nil parent link")
	}

	bh, count, err := t.verifySubtree(t.root, nil, nil)
	if err != nil {
		return err
	}
	if bh != t.blackHeight {
		return errors.Errorf("tracked black-height %d, measured %d", t.blackHeight, bh)
	}
	if count != t.size {
		return errors.Errorf("tracked size %d, counted %d nodes", t.size, count)
	}
	return nil
}

// verifySubtree checks n's subtree against the [lo, hi] value bounds,
// both inclusive so that duplicates are legal on either side. It
// returns the subtree's black-height and node count.
func (t *Tree[T]) verifySubtree(n *Node[T], lo, hi *T) (int, int, error) {
	if n == nil {
		return 0, 0, nil
	}

	if lo != nil && t.cmp(n.value, *lo) < 0 {
		return 0, 0, errors.Errorf("BST order violated: %v below lower bound %v", n.value, *lo)
	}
	if hi != nil && t.cmp(n.value, *hi) > 0 {
		return 0, 0, errors.Errorf("BST order violated: %v above upper bound %v", n.value, *hi)
	}

	if n.left != nil && n.left.parent != n {
		return 0, 0, errors.Errorf("left child of %v has a stale parent link", n.value)
	}
	if n.right != nil && n.right.parent != n {
		return 0, 0, errors.Errorf("right child of %v has a stale parent link", n.value)
	}

	if n.color == Red && (isRed(n.left) || isRed(n.right)) {
		return 0, 0, errors.Errorf("red node %v has a red child", n.value)
	}

	leftBH, leftCount, err := t.verifySubtree(n.left, lo, &n.value)
	if err != nil {
		return 0, 0, err
	}
	rightBH, rightCount, err := t.verifySubtree(n.right, &n.value, hi)
	if err != nil {
		return 0, 0, err
	}
	if leftBH != rightBH {
		return 0, 0, errors.Errorf("black-height mismatch under %v: left %d, right %d", n.value, leftBH, rightBH)
	}

	bh := leftBH
	if n.color == Black {
		bh++
	}
	return bh, leftCount + rightCount + 1, nil
}
