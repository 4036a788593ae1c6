package rbtree

// Delete removes one occurrence of value from the tree. It reports
// false when the value is absent and true once a node has been spliced
// out.
func (t *Tree[T]) Delete(value T) bool {
	current := t.Search(value)
	if current == nil {
		return false
	}
	t.deleteHelper(current)
	t.size--
	return true
}

// deleteHelper removes current from the tree. A node with two children
// is reduced to the single/no-child case by swapping values with the
// deeper of its in-order predecessor and successor (ties go to the
// successor) and recursing on that donor. When the structurally removed
// node is black, the double-black repair runs BEFORE the splice: the
// rebalance inspects current's position and sibling while the node is
// still linked in place.
func (t *Tree[T]) deleteHelper(current *Node[T]) {
	parent := current.parent

	switch {
	case current.left == nil && current.right == nil:
		if parent == nil {
			// sole node of the tree
			t.root = nil
			t.blackHeight = 0
			return
		}
		if current.color == Black {
			t.deleteRebalance(current)
		}
		if parent.left == current {
			parent.left = nil
		} else {
			parent.right = nil
		}
		current.parent = nil

	case current.left == nil: // right child only
		if current.color == Black {
			t.deleteRebalance(current)
		}
		if parent == nil {
			t.root = current.right
			t.root.parent = nil
			return
		}
		if parent.left == current {
			parent.left = current.right
			parent.left.parent = parent
		} else {
			parent.right = current.right
			parent.right.parent = parent
		}

	case current.right == nil: // left child only
		if current.color == Black {
			t.deleteRebalance(current)
		}
		if parent == nil {
			t.root = current.left
			t.root.parent = nil
			return
		}
		if parent.left == current {
			parent.left = current.left
			parent.left.parent = parent
		} else {
			parent.right = current.left
			parent.right.parent = parent
		}

	default:
		// two children: swap the value with whichever of the in-order
		// predecessor (rightmost of the left subtree) and successor
		// (leftmost of the right subtree) sits deeper, then delete the
		// donor, which now has at most one child by construction.
		pred, predDepth := current.left, 0
		for pred.right != nil {
			pred = pred.right
			predDepth++
		}
		succ, succDepth := current.right, 0
		for succ.left != nil {
			succ = succ.left
			succDepth++
		}

		if predDepth > succDepth {
			current.value, pred.value = pred.value, current.value
			t.deleteHelper(pred)
		} else {
			current.value, succ.value = succ.value, current.value
			t.deleteHelper(succ)
		}
	}
}

// deleteRebalance repairs a subtree that is short one black node
// relative to its sibling: current is either the black node about to be
// unlinked or the child pulled up into a removed black node's place.
// The red-child trivial fix is checked before root triviality; both are
// terminal. Only the all-black-sibling-family-with-black-parent case
// recurses, strictly upward.
func (t *Tree[T]) deleteRebalance(current *Node[T]) {
	// trivial: a red child soaks up the missing black
	if isRed(current.left) {
		current.left.color = Black
		return
	}
	if isRed(current.right) {
		current.right.color = Black
		return
	}

	if current == t.root {
		// the deficit reached the root: every path lost one black node
		t.blackHeight--
		return
	}

	parent := current.parent
	sibling := parent.left
	siblingOnRight := parent.left == current
	if siblingOnRight {
		sibling = parent.right
	}

	// red sibling: rotate it above parent so the new sibling is black,
	// then fall through to the black-sibling cases
	if sibling.color == Red {
		t.rotate(sibling)
		parent.color = Red
		sibling.color = Black

		siblingOnRight = parent.left == current
		if siblingOnRight {
			sibling = parent.right
		} else {
			sibling = parent.left
		}
	}

	if isBlack(sibling.left) && isBlack(sibling.right) {
		if parent.color == Black {
			// push the deficit one level up; the sibling turns red
			// only after the upper levels have been repaired
			t.deleteRebalance(parent)
			sibling.color = Red
			return
		}
		sibling.color = Red
		parent.color = Black
		return
	}

	// at least one red nephew; a black outside nephew means the inside
	// one is red and must first be rotated into the outside position
	if siblingOnRight {
		if isBlack(sibling.right) {
			nephew := sibling.left
			t.rotate(nephew)
			nephew.color = Black
			sibling.color = Red
			sibling = nephew
		}
		t.rotate(sibling)
		sibling.color = parent.color
		parent.color = Black
		sibling.right.color = Black
	} else {
		if isBlack(sibling.left) {
			nephew := sibling.right
			t.rotate(nephew)
			nephew.color = Black
			sibling.color = Red
			sibling = nephew
		}
		t.rotate(sibling)
		sibling.color = parent.color
		parent.color = Black
		sibling.left.color = Black
	}
}
