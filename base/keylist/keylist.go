// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list of items with fast lookup by
a string key. Unlike a plain ordered map, the order is fully mutable:
items can be moved to the front or back, stepped one position at a time,
or inserted relative to another key, all in O(1).

The list is a doubly linked list stored in an arena: nodes live in a
dense slice and link to each other by index, with a key-to-index map on
the side. Freed slots are recycled through a free list, so long-lived
lists with heavy reordering do not leak arena slots.

The order of the list is the drawing order for containers built on it:
the tail is the "front" (drawn last, topmost), the head is the "back".
*/
package keylist

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrKeyNotFound is returned when an operation names a key that is
	// not in the list.
	ErrKeyNotFound = errors.New("keylist: key not found")

	// ErrDuplicateKey is returned when an insertion names a key that is
	// already in the list.
	ErrDuplicateKey = errors.New("keylist: duplicate key")
)

// nil link sentinel
const none = -1

// node is one arena slot: a key, its value, and the neighbor links.
type node[V any] struct {
	key        string
	value      V
	prev, next int
}

// List is an ordered collection of values keyed by string.
// The zero value is ready to use.
type List[V any] struct {
	nodes   []node[V]
	free    []int
	indexes map[string]int
	head    int
	tail    int
	length  int
}

// New returns a new [List]. The zero value is also usable; this is just
// a convenience.
func New[V any]() *List[V] {
	l := &List[V]{}
	l.init()
	return l
}

func (l *List[V]) init() {
	if l.indexes == nil {
		l.indexes = make(map[string]int)
		l.head = none
		l.tail = none
	}
}

// Len returns the number of items in the list.
func (l *List[V]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Reset removes all items.
func (l *List[V]) Reset() {
	l.nodes = nil
	l.free = nil
	l.indexes = make(map[string]int)
	l.head = none
	l.tail = none
	l.length = 0
}

// At returns the value for the given key, with false for a missing key.
func (l *List[V]) At(key string) (V, bool) {
	l.init()
	if idx, ok := l.indexes[key]; ok {
		return l.nodes[idx].value, true
	}
	var zv V
	return zv, false
}

// Has reports whether the key is in the list.
func (l *List[V]) Has(key string) bool {
	l.init()
	_, ok := l.indexes[key]
	return ok
}

// alloc takes a slot from the free list or grows the arena.
func (l *List[V]) alloc(key string, val V) int {
	var idx int
	if n := len(l.free); n > 0 {
		idx = l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[idx] = node[V]{key: key, value: val}
	} else {
		idx = len(l.nodes)
		l.nodes = append(l.nodes, node[V]{key: key, value: val})
	}
	l.indexes[key] = idx
	l.length++
	return idx
}

// Set sets the value for the given key. A new key is appended at the
// tail (the front of the drawing order); an existing key has its value
// replaced in place and keeps its position.
func (l *List[V]) Set(key string, val V) {
	l.init()
	if idx, ok := l.indexes[key]; ok {
		l.nodes[idx].value = val
		return
	}
	l.linkTail(l.alloc(key, val))
}

// Prepend sets the value for the given key, placing a new key at the
// head (the back of the drawing order). An existing key has its value
// replaced in place and keeps its position.
func (l *List[V]) Prepend(key string, val V) {
	l.init()
	if idx, ok := l.indexes[key]; ok {
		l.nodes[idx].value = val
		return
	}
	l.linkHead(l.alloc(key, val))
}

// Delete removes the key from the list, relinking its neighbors.
func (l *List[V]) Delete(key string) error {
	l.init()
	idx, ok := l.indexes[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	l.unlink(idx)
	l.release(idx)
	return nil
}

// InsertBefore inserts a new key-value pair immediately before the
// anchor key (toward the head).
func (l *List[V]) InsertBefore(key string, anchor string, val V) error {
	l.init()
	if _, ok := l.indexes[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	aidx, ok := l.indexes[anchor]
	if !ok {
		return fmt.Errorf("%w: anchor %q", ErrKeyNotFound, anchor)
	}
	idx := l.alloc(key, val)
	l.linkBefore(idx, aidx)
	return nil
}

// InsertAfter inserts a new key-value pair immediately after the anchor
// key (toward the tail).
func (l *List[V]) InsertAfter(key string, anchor string, val V) error {
	l.init()
	if _, ok := l.indexes[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	aidx, ok := l.indexes[anchor]
	if !ok {
		return fmt.Errorf("%w: anchor %q", ErrKeyNotFound, anchor)
	}
	idx := l.alloc(key, val)
	l.linkAfter(idx, aidx)
	return nil
}

// MoveToFront moves the key to the tail of the list (drawn last, on
// top). No-op if it is already there.
func (l *List[V]) MoveToFront(key string) error {
	l.init()
	idx, ok := l.indexes[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	if l.tail == idx {
		return nil
	}
	l.unlink(idx)
	l.linkTail(idx)
	return nil
}

// MoveToBack moves the key to the head of the list (drawn first,
// underneath everything). No-op if it is already there.
func (l *List[V]) MoveToBack(key string) error {
	l.init()
	idx, ok := l.indexes[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	if l.head == idx {
		return nil
	}
	l.unlink(idx)
	l.linkHead(idx)
	return nil
}

// StepForward swaps the key with its neighbor toward the tail.
// No-op if it is already at the tail.
func (l *List[V]) StepForward(key string) error {
	l.init()
	idx, ok := l.indexes[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	next := l.nodes[idx].next
	if next == none {
		return nil
	}
	l.unlink(idx)
	l.linkAfter(idx, next)
	return nil
}

// StepBackward swaps the key with its neighbor toward the head.
// No-op if it is already at the head.
func (l *List[V]) StepBackward(key string) error {
	l.init()
	idx, ok := l.indexes[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	prev := l.nodes[idx].prev
	if prev == none {
		return nil
	}
	l.unlink(idx)
	l.linkBefore(idx, prev)
	return nil
}

// Keys returns the keys from head to tail.
func (l *List[V]) Keys() []string {
	l.init()
	kl := make([]string, 0, l.Len())
	for idx := l.head; idx != none; idx = l.nodes[idx].next {
		kl = append(kl, l.nodes[idx].key)
	}
	return kl
}

// KeysReverse returns the keys from tail to head.
func (l *List[V]) KeysReverse() []string {
	l.init()
	kl := make([]string, 0, l.Len())
	for idx := l.tail; idx != none; idx = l.nodes[idx].prev {
		kl = append(kl, l.nodes[idx].key)
	}
	return kl
}

// All iterates over key-value pairs from head to tail. The key order is
// a snapshot taken when iteration starts, so the list can be mutated
// during iteration; values are looked up live and keys deleted
// mid-iteration are skipped.
func (l *List[V]) All() iter.Seq2[string, V] {
	keys := l.Keys()
	return func(yield func(string, V) bool) {
		for _, key := range keys {
			if val, ok := l.At(key); ok {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// AllReverse iterates over key-value pairs from tail to head, with the
// same snapshot semantics as [List.All].
func (l *List[V]) AllReverse() iter.Seq2[string, V] {
	keys := l.KeysReverse()
	return func(yield func(string, V) bool) {
		for _, key := range keys {
			if val, ok := l.At(key); ok {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// linkTail links an unlinked node at the tail.
func (l *List[V]) linkTail(idx int) {
	nd := &l.nodes[idx]
	nd.prev = l.tail
	nd.next = none
	if l.tail != none {
		l.nodes[l.tail].next = idx
	} else {
		l.head = idx
	}
	l.tail = idx
}

// linkHead links an unlinked node at the head.
func (l *List[V]) linkHead(idx int) {
	nd := &l.nodes[idx]
	nd.prev = none
	nd.next = l.head
	if l.head != none {
		l.nodes[l.head].prev = idx
	} else {
		l.tail = idx
	}
	l.head = idx
}

// linkBefore links an unlinked node immediately before the anchor.
func (l *List[V]) linkBefore(idx, anchor int) {
	prev := l.nodes[anchor].prev
	if prev == none {
		l.linkHead(idx)
		return
	}
	nd := &l.nodes[idx]
	nd.prev = prev
	nd.next = anchor
	l.nodes[prev].next = idx
	l.nodes[anchor].prev = idx
}

// linkAfter links an unlinked node immediately after the anchor.
func (l *List[V]) linkAfter(idx, anchor int) {
	next := l.nodes[anchor].next
	if next == none {
		l.linkTail(idx)
		return
	}
	nd := &l.nodes[idx]
	nd.prev = anchor
	nd.next = next
	l.nodes[anchor].next = idx
	l.nodes[next].prev = idx
}

// unlink splices the node out of the chain, leaving it allocated.
func (l *List[V]) unlink(idx int) {
	nd := &l.nodes[idx]
	if nd.prev != none {
		l.nodes[nd.prev].next = nd.next
	} else {
		l.head = nd.next
	}
	if nd.next != none {
		l.nodes[nd.next].prev = nd.prev
	} else {
		l.tail = nd.prev
	}
	nd.prev = none
	nd.next = none
}

// release returns the slot to the free list.
func (l *List[V]) release(idx int) {
	delete(l.indexes, l.nodes[idx].key)
	var zv node[V]
	l.nodes[idx] = zv
	l.free = append(l.free, idx)
	l.length--
}
