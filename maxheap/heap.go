package maxheap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

var (
	ErrInvalidCapacity = errors.New("maxheap: negative capacity")
	ErrHeapFull        = errors.New("maxheap: heap is full")
	ErrNotFound        = errors.New("maxheap: key not found")
)

// Heap is a binary max-heap of ints stored in a fixed-size array. The first
// size slots of storage form a complete binary tree: slot i has children 2i+1
// and 2i+2, and every slot is at least as large as its children.
//
// A Heap is not safe for concurrent use.
type Heap struct {
	storage []int
	size    uint64
}

// New creates an empty heap that holds at most capacity keys. A capacity of 0
// is allowed and gives a heap that is always full.
func New(capacity int) (*Heap, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Heap{
		storage: make([]int, capacity),
		size:    0,
	}, nil
}

func parent(i uint64) uint64 {
	return (i - 1) / 2
}

func left(i uint64) uint64 {
	return 2*i + 1
}

func right(i uint64) uint64 {
	return 2*i + 2
}

func (h *Heap) swap(i, j uint64) {
	h.storage[i], h.storage[j] = h.storage[j], h.storage[i]
}

// Len returns the number of keys in the heap.
func (h *Heap) Len() uint64 {
	return h.size
}

// Cap returns the fixed capacity the heap was created with.
func (h *Heap) Cap() uint64 {
	return uint64(len(h.storage))
}

// Max returns the largest key, which is always at the root. The boolean is
// false if the heap is empty.
func (h *Heap) Max() (int, bool) {
	if h.size == 0 {
		return 0, false
	}
	return h.storage[0], true
}

// Values returns a copy of the keys in array order.
func (h *Heap) Values() []int {
	out := make([]int, h.size)
	copy(out, h.storage[:h.size])
	return out
}

// Insert adds key to the heap, or returns ErrHeapFull without changing
// anything if the heap is at capacity. Duplicate keys are allowed.
func (h *Heap) Insert(key int) error {
	if h.size == h.Cap() {
		return ErrHeapFull
	}
	i := h.size
	h.storage[i] = key
	h.size = std.SumAssumeNoOverflow(h.size, 1)
	h.siftUp(i)
	return nil
}

// siftUp moves the key at i toward the root while it is strictly larger than
// its parent. It reports whether the key moved.
func (h *Heap) siftUp(i uint64) bool {
	moved := false
	for i > 0 {
		p := parent(i)
		if h.storage[i] <= h.storage[p] {
			break
		}
		h.swap(i, p)
		i = p
		moved = true
	}
	return moved
}

// siftDown moves the key at i toward the leaves, swapping with the larger
// child, until neither child is larger.
func (h *Heap) siftDown(i uint64) {
	for {
		l := left(i)
		if l >= h.size {
			break
		}
		larger := l
		if r := right(i); r < h.size && h.storage[r] > h.storage[l] {
			larger = r
		}
		if h.storage[larger] <= h.storage[i] {
			break
		}
		h.swap(i, larger)
		i = larger
	}
}

// Delete removes one occurrence of key and returns it. If key is not in the
// heap it returns an error wrapping ErrNotFound and the heap is unchanged.
//
// The last key in the array takes the removed slot and is then sifted up or
// down, whichever restores the heap property.
func (h *Heap) Delete(key int) (int, error) {
	i, ok := h.find(key)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNotFound, key)
	}
	primitive.Assert(i < h.size)
	removed := h.storage[i]
	last := h.size - 1
	h.storage[i] = h.storage[last]
	h.size = last
	if i < h.size {
		if !h.siftUp(i) {
			h.siftDown(i)
		}
	}
	return removed, nil
}

// String renders the keys in array order, e.g. "[9,8,5]".
func (h *Heap) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := uint64(0); i < h.size; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(h.storage[i]))
	}
	b.WriteByte(']')
	return b.String()
}
