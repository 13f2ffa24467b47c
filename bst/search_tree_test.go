package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsert(t *testing.T) {
	assert := assert.New(t)

	// Create a new search tree
	tree := NewSearchTree()

	// Insert some keys into the tree
	for _, key := range []int{3, 7, 2, 4, 6, 8} {
		assert.NoError(tree.Insert(key), "insert %d", key)
	}
	assert.Equal(uint64(6), tree.Len())

	// Check if the keys are present in the tree
	assert.True(tree.Contains(3), "Tree should contain key 3")
	assert.True(tree.Contains(7), "Tree should contain key 7")
	assert.True(tree.Contains(2), "Tree should contain key 2")
	assert.True(tree.Contains(4), "Tree should contain key 4")
	assert.True(tree.Contains(6), "Tree should contain key 6")
	assert.True(tree.Contains(8), "Tree should contain key 8")

	// Check if some non-existent keys are not present in the tree
	assert.False(tree.Contains(1), "Tree should not contain key 1")
	assert.False(tree.Contains(9), "Tree should not contain key 9")
}

func TestInsertDuplicate(t *testing.T) {
	assert := assert.New(t)

	tree := NewSearchTree()
	assert.NoError(tree.Insert(5))
	assert.NoError(tree.Insert(-3))
	assert.NoError(tree.Insert(9))

	before := tree.InOrder()
	assert.ErrorIs(tree.Insert(5), ErrAlreadyPresent, "duplicate root")
	assert.ErrorIs(tree.Insert(-3), ErrAlreadyPresent, "duplicate leaf")
	assert.Equal(before, tree.InOrder())
	assert.Equal(uint64(3), tree.Len())
}

func TestEmptyTree(t *testing.T) {
	assert := assert.New(t)

	tree := NewSearchTree()
	assert.False(tree.Contains(0))
	assert.Empty(tree.InOrder())
	assert.Empty(tree.PreOrder())
	assert.Empty(tree.LevelOrder())
	assert.Equal(uint64(0), tree.Len())
}

func TestTraversalOrders(t *testing.T) {
	assert := assert.New(t)

	//         5
	//       /   \
	//      3     7
	//     / \   / \
	//    1   4 6   8
	tree := NewSearchTree()
	for _, key := range []int{5, 3, 1, 4, 7, 6, 8} {
		assert.NoError(tree.Insert(key))
	}

	assert.Equal([]int{1, 3, 4, 5, 6, 7, 8}, tree.InOrder())
	assert.Equal([]int{5, 3, 1, 4, 7, 6, 8}, tree.PreOrder())
	assert.Equal([]int{5, 3, 7, 1, 4, 6, 8}, tree.LevelOrder())
}

func TestLevelOrderUnbalanced(t *testing.T) {
	assert := assert.New(t)

	// a right spine with a left branch hanging off the second node:
	// 1 -> 5 -> (3, 9), 3 -> 2
	tree := NewSearchTree()
	for _, key := range []int{1, 5, 3, 9, 2} {
		assert.NoError(tree.Insert(key))
	}
	assert.Equal([]int{1, 5, 3, 9, 2}, tree.LevelOrder())
	assert.Equal([]int{1, 5, 3, 2, 9}, tree.PreOrder())
}
