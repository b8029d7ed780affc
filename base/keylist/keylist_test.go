// Copyright (c) 2026, The Vecmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fill(keys ...string) *List[int] {
	l := New[int]()
	for i, k := range keys {
		l.Set(k, i)
	}
	return l
}

func TestSetPrepend(t *testing.T) {
	a := New[int]()
	a.Prepend("1", 1)
	a.Prepend("2", 2)
	a.Prepend("3", 3)
	assert.Equal(t, []string{"3", "2", "1"}, a.Keys())

	b := fill("1", "2", "3")
	assert.Equal(t, []string{"1", "2", "3"}, b.Keys())

	c := fill("1", "2")
	c.Prepend("3", 3)
	assert.Equal(t, []string{"3", "1", "2"}, c.Keys())

	d := New[int]()
	d.Prepend("1", 1)
	d.Prepend("2", 2)
	d.Set("3", 3)
	assert.Equal(t, []string{"2", "1", "3"}, d.Keys())
}

func TestSetExistingKeepsPosition(t *testing.T) {
	l := fill("a", "b", "c")
	l.Set("b", 42)
	assert.Equal(t, []string{"a", "b", "c"}, l.Keys())
	v, ok := l.At("b")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestDelete(t *testing.T) {
	l := fill("1", "2", "3", "4", "5", "6")
	assert.NoError(t, l.Delete("4"))
	assert.NoError(t, l.Delete("6"))
	assert.NoError(t, l.Delete("1"))
	assert.NoError(t, l.Delete("3"))
	assert.Equal(t, []string{"2", "5"}, l.Keys())
	assert.Equal(t, 2, l.Len())

	err := l.Delete("nope")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.NoError(t, l.Delete("2"))
	assert.NoError(t, l.Delete("5"))
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Keys())

	// arena slots are recycled
	l.Set("x", 1)
	l.Set("y", 2)
	assert.Equal(t, []string{"x", "y"}, l.Keys())
}

func TestInsertBeforeAfter(t *testing.T) {
	l := fill("2", "5")

	assert.NoError(t, l.InsertAfter("6", "2", 6))
	assert.NoError(t, l.InsertAfter("7", "5", 7))
	assert.NoError(t, l.InsertAfter("8", "6", 8))
	assert.Equal(t, []string{"2", "6", "8", "5", "7"}, l.Keys())

	assert.NoError(t, l.InsertBefore("9", "2", 9))
	assert.NoError(t, l.InsertBefore("10", "2", 10))
	assert.NoError(t, l.InsertBefore("11", "7", 11))
	assert.Equal(t, []string{"9", "10", "2", "6", "8", "5", "11", "7"}, l.Keys())

	assert.ErrorIs(t, l.InsertBefore("12", "nope", 12), ErrKeyNotFound)
	assert.ErrorIs(t, l.InsertAfter("12", "nope", 12), ErrKeyNotFound)
	assert.ErrorIs(t, l.InsertAfter("9", "2", 9), ErrDuplicateKey)
}

func TestMove(t *testing.T) {
	l := fill("9", "10", "2", "6", "8", "5", "11", "7")

	assert.NoError(t, l.MoveToBack("6"))
	assert.NoError(t, l.MoveToBack("9"))
	assert.NoError(t, l.MoveToFront("8"))
	assert.NoError(t, l.MoveToFront("7"))
	assert.Equal(t, []string{"9", "6", "10", "2", "5", "11", "8", "7"}, l.Keys())

	for range 3 {
		assert.NoError(t, l.StepBackward("2"))
	}
	for range 3 {
		assert.NoError(t, l.StepBackward("5"))
	}
	assert.NoError(t, l.StepBackward("6"))
	assert.NoError(t, l.MoveToBack("7"))
	for range 3 {
		assert.NoError(t, l.StepForward("7"))
	}
	for range 3 {
		assert.NoError(t, l.StepBackward("8"))
	}
	assert.Equal(t, []string{"2", "5", "6", "7", "8", "9", "10", "11"}, l.Keys())

	assert.ErrorIs(t, l.MoveToFront("nope"), ErrKeyNotFound)
	assert.ErrorIs(t, l.MoveToBack("nope"), ErrKeyNotFound)
	assert.ErrorIs(t, l.StepForward("nope"), ErrKeyNotFound)
	assert.ErrorIs(t, l.StepBackward("nope"), ErrKeyNotFound)
}

func TestMoveIdempotent(t *testing.T) {
	l := fill("a", "b", "c")
	assert.NoError(t, l.MoveToFront("a"))
	once := l.Keys()
	assert.NoError(t, l.MoveToFront("a"))
	assert.Equal(t, once, l.Keys())

	assert.NoError(t, l.MoveToBack("c"))
	once = l.Keys()
	assert.NoError(t, l.MoveToBack("c"))
	assert.Equal(t, once, l.Keys())

	// stepping at the boundary is a no-op
	assert.NoError(t, l.StepForward("a"))
	front := l.Keys()
	assert.NoError(t, l.StepForward("a"))
	assert.Equal(t, front, l.Keys())
}

func TestReverseIsMirror(t *testing.T) {
	l := fill("1", "2", "4")
	l.Set("0", 0)
	assert.Equal(t, []string{"1", "2", "4", "0"}, l.Keys())

	assert.NoError(t, l.MoveToBack("0"))
	assert.Equal(t, []string{"0", "1", "2", "4"}, l.Keys())
	assert.NoError(t, l.StepForward("1"))
	assert.Equal(t, []string{"0", "2", "1", "4"}, l.Keys())
	assert.NoError(t, l.StepBackward("4"))
	assert.Equal(t, []string{"0", "2", "4", "1"}, l.Keys())
	assert.NoError(t, l.MoveToFront("2"))
	assert.NoError(t, l.MoveToFront("1"))
	assert.NoError(t, l.MoveToFront("0"))
	assert.Equal(t, []string{"4", "2", "1", "0"}, l.Keys())
	assert.Equal(t, []string{"0", "1", "2", "4"}, l.KeysReverse())

	// forward then reversed are exact mirrors, and every key round-trips
	// through the lookup map
	fw := l.Keys()
	rv := l.KeysReverse()
	for i, k := range fw {
		assert.Equal(t, k, rv[len(rv)-1-i])
		_, ok := l.At(k)
		assert.True(t, ok)
	}
}

func TestIterators(t *testing.T) {
	l := fill("a", "b", "c")
	var keys []string
	var vals []int
	for k, v := range l.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, []int{0, 1, 2}, vals)

	keys = nil
	for k := range l.AllReverse() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"c", "b", "a"}, keys)

	// mutation during iteration: snapshot order, deleted keys skipped
	keys = nil
	for k := range l.All() {
		if k == "a" {
			assert.NoError(t, l.Delete("b"))
			l.Set("d", 3)
		}
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "c"}, keys)
}

func TestZeroValue(t *testing.T) {
	var l List[string]
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Keys())
	l.Set("a", "x")
	assert.Equal(t, 1, l.Len())
}
