package bst

import "github.com/Thefaceofbo/CSC190Labs/container"

func (n *node) inOrder(out []int) []int {
	if n == nil {
		return out
	}
	out = n.left.inOrder(out)
	out = append(out, n.key)
	return n.right.inOrder(out)
}

func (n *node) preOrder(out []int) []int {
	if n == nil {
		return out
	}
	out = append(out, n.key)
	out = n.left.preOrder(out)
	return n.right.preOrder(out)
}

// InOrder returns the keys in ascending order.
func (t *SearchTree) InOrder() []int {
	return t.root.inOrder(make([]int, 0, t.size))
}

// PreOrder returns the keys depth-first, each node before its left and then
// its right subtree.
func (t *SearchTree) PreOrder() []int {
	return t.root.preOrder(make([]int, 0, t.size))
}

// LevelOrder returns the keys breadth-first: the root, then every node at
// depth 1 from left to right, and so on.
func (t *SearchTree) LevelOrder() []int {
	out := make([]int, 0, t.size)
	if t.root == nil {
		return out
	}
	q := container.NewQueue[*node]()
	q.Push(t.root)
	for {
		n, ok := q.Pop()
		if !ok {
			break
		}
		out = append(out, n.key)
		if n.left != nil {
			q.Push(n.left)
		}
		if n.right != nil {
			q.Push(n.right)
		}
	}
	return out
}
