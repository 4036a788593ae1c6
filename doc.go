// Package rbtree implements a self-balancing red-black binary search
// tree with ordered insertion, lookup, and deletion in O(log n) worst
// case. It supports duplicate values (placed in the right subtree),
// tracks the tree's black-height incrementally, and exposes inorder and
// breadth-first diagnostic traversals.
//
// The tree is intentionally decoupled from persistence, networking, and
// locking. It is not safe for concurrent use; callers that share a tree
// across goroutines must serialize access with an external lock for the
// full duration of every operation, since a single rebalance can touch
// nodes all the way up to the root.
package rbtree
