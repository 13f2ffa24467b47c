package maxheap

import "github.com/Thefaceofbo/CSC190Labs/container"

// find returns the index of some occurrence of key.
//
// Every key in a subtree is at most the key at its root, so once a slot holds
// something smaller than key the whole subtree below it can be skipped. All
// other subtrees are searched, so a present key is always found.
func (h *Heap) find(key int) (uint64, bool) {
	if h.size == 0 {
		return 0, false
	}
	pending := container.NewStack[uint64]()
	pending.Push(0)
	for {
		i, ok := pending.Pop()
		if !ok {
			break
		}
		v := h.storage[i]
		if v == key {
			return i, true
		}
		if v < key {
			continue
		}
		if r := right(i); r < h.size {
			pending.Push(r)
		}
		if l := left(i); l < h.size {
			pending.Push(l)
		}
	}
	return 0, false
}

// Contains reports whether key is anywhere in the heap.
func (h *Heap) Contains(key int) bool {
	_, ok := h.find(key)
	return ok
}
