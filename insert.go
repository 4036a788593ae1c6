package rbtree

// Insert adds value to the tree. Values comparing less than a node go
// left, greater-or-equal go right, so duplicates are accepted and
// always end up in the right subtree. Insert never fails.
func (t *Tree[T]) Insert(value T) {
	if t.root == nil {
		t.root = &Node[T]{value: value, color: Black}
		t.blackHeight++
		t.size++
		return
	}

	current := t.root
	for {
		if t.cmp(value, current.value) < 0 {
			if current.left != nil {
				current = current.left
				continue
			}
			current.left = &Node[T]{value: value, color: Red, parent: current}
			current = current.left
			break
		}
		if current.right != nil {
			current = current.right
			continue
		}
		current.right = &Node[T]{value: value, color: Red, parent: current}
		current = current.right
		break
	}
	t.size++

	// a fresh red node under a red parent breaks the no-red-red rule
	if current.parent.color == Red {
		t.insertRebalance(current)
	}
}

// insertRebalance repairs a red-red violation at current, a red node
// with a red parent. The root is always black, so the parent is never
// the root and a grandparent always exists. Only the red-uncle recolor
// case recurses, and only strictly upward.
func (t *Tree[T]) insertRebalance(current *Node[T]) {
	parent := current.parent
	grandparent := parent.parent

	var uncle *Node[T]
	if grandparent.left == parent {
		uncle = grandparent.right
	} else {
		uncle = grandparent.left
	}

	if uncle != nil && uncle.color == Red {
		// recolor case: push the violation (if any) two levels up
		parent.color, uncle.color, grandparent.color = Black, Black, Red

		switch {
		case grandparent == t.root:
			// the only point where the tree gains a black level
			grandparent.color = Black
			t.blackHeight++
		case grandparent.parent == t.root:
			// root is black, no further violation possible
		case grandparent.parent.color == Red:
			t.insertRebalance(grandparent)
		}
		return
	}

	// uncle is black or absent: at most one rotation pair fixes it.
	// An inside (zig-zag) child is first rotated into an outside child;
	// the rotated child then takes over the parent role.
	if parent == grandparent.left && current == parent.right {
		t.rotate(current)
		parent = current
	} else if parent == grandparent.right && current == parent.left {
		t.rotate(current)
		parent = current
	}

	t.rotate(parent)
	grandparent.color = Red
	parent.color = Black
}
