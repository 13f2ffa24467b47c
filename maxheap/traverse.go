package maxheap

type order int

const (
	preOrder order = iota
	inOrder
	postOrder
)

// direction records how the walk arrived at the current slot.
type direction int

const (
	down direction = iota
	upFromLeft
	upFromRight
)

// walk visits the implicit tree in the given order using only the current
// index and the last direction taken; no stack and no recursion. Left children
// sit at odd indices and right children at even ones, which tells the walk
// which side it is returning from.
func (h *Heap) walk(o order) []int {
	out := make([]int, 0, h.size)
	if h.size == 0 {
		return out
	}
	var i = uint64(0)
	var dir = down
	for {
		if dir == down {
			if o == preOrder {
				out = append(out, h.storage[i])
			}
			if l := left(i); l < h.size {
				i = l
				continue
			}
			// no left subtree, so it is already finished
			dir = upFromLeft
		}
		if dir == upFromLeft {
			if o == inOrder {
				out = append(out, h.storage[i])
			}
			if r := right(i); r < h.size {
				i = r
				dir = down
				continue
			}
		}
		// both subtrees are done
		if o == postOrder {
			out = append(out, h.storage[i])
		}
		if i == 0 {
			break
		}
		if i%2 == 1 {
			dir = upFromLeft
		} else {
			dir = upFromRight
		}
		i = parent(i)
	}
	return out
}

// PreOrder returns the keys with each slot before its left and right subtrees.
func (h *Heap) PreOrder() []int {
	return h.walk(preOrder)
}

// InOrder returns the keys with each slot between its left and right subtrees.
func (h *Heap) InOrder() []int {
	return h.walk(inOrder)
}

// PostOrder returns the keys with each slot after both of its subtrees.
func (h *Heap) PostOrder() []int {
	return h.walk(postOrder)
}
