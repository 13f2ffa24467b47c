package bst

import (
	"errors"

	"github.com/goose-lang/std"
)

// ErrAlreadyPresent is returned by Insert when the key is already stored.
var ErrAlreadyPresent = errors.New("bst: key already present")

type node struct {
	key   int
	left  *node
	right *node
}

// SearchTree is a binary search tree of distinct ints. Each node owns its two
// subtrees; there are no parent pointers.
//
// A SearchTree is not safe for concurrent use.
type SearchTree struct {
	root *node
	size uint64
}

func NewSearchTree() *SearchTree {
	return &SearchTree{}
}

// insert returns the (possibly new) root of the subtree. On error the subtree
// is unchanged.
func (n *node) insert(key int) (*node, error) {
	if n == nil {
		return &node{key: key}, nil
	}
	if key < n.key {
		left, err := n.left.insert(key)
		if err != nil {
			return n, err
		}
		n.left = left
	} else if n.key < key {
		right, err := n.right.insert(key)
		if err != nil {
			return n, err
		}
		n.right = right
	} else {
		return n, ErrAlreadyPresent
	}
	return n, nil
}

// Insert adds key to the tree. If key is already present the tree is left
// unchanged and ErrAlreadyPresent is returned.
func (t *SearchTree) Insert(key int) error {
	root, err := t.root.insert(key)
	if err != nil {
		return err
	}
	t.root = root
	t.size = std.SumAssumeNoOverflow(t.size, 1)
	return nil
}

func (n *node) contains(key int) bool {
	if n == nil {
		return false
	}
	if key == n.key {
		return true
	}
	if key < n.key {
		return n.left.contains(key)
	}
	return n.right.contains(key)
}

func (t *SearchTree) Contains(key int) bool {
	return t.root.contains(key)
}

// Len returns the number of keys in the tree.
func (t *SearchTree) Len() uint64 {
	return t.size
}
