// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"iter"

	"github.com/bitmark-inc/bstree/fault"
)

// Iterator - forward cursor over the nodes of a tree in ascending key
// order; the zero value is the end of sequence
type Iterator[K any, T any] struct {
	node *node[K, T]
}

// ConstIterator - read only version of Iterator
type ConstIterator[K any, T any] struct {
	node *node[K, T]
}

// Begin - iterator on the node with the lowest key
func (tree *Tree[K, T]) Begin() Iterator[K, T] {
	return Iterator[K, T]{node: leftmost(tree.root)}
}

// End - iterator one past the node with the highest key
func (tree *Tree[K, T]) End() Iterator[K, T] {
	return Iterator[K, T]{}
}

// ConstBegin - read only iterator on the node with the lowest key
func (tree *Tree[K, T]) ConstBegin() ConstIterator[K, T] {
	return ConstIterator[K, T]{node: leftmost(tree.root)}
}

// ConstEnd - read only iterator one past the node with the highest key
func (tree *Tree[K, T]) ConstEnd() ConstIterator[K, T] {
	return ConstIterator[K, T]{}
}

// First - same as Begin
func (tree *Tree[K, T]) First() Iterator[K, T] {
	return tree.Begin()
}

// Last - iterator on the node with the highest key, End() if empty
func (tree *Tree[K, T]) Last() Iterator[K, T] {
	return Iterator[K, T]{node: rightmost(tree.root)}
}

// All - key/value sequence for range loops
//
// the tree must not be modified until the loop finishes
func (tree *Tree[K, T]) All() iter.Seq2[K, T] {
	return func(yield func(K, T) bool) {
		for p := leftmost(tree.root); nil != p; p = successor(p) {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Keys - ascending key sequence for range loops
func (tree *Tree[K, T]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := leftmost(tree.root); nil != p; p = successor(p) {
			if !yield(p.key) {
				return
			}
		}
	}
}

// Key - key of the current node
func (it Iterator[K, T]) Key() K {
	return deref(it.node).key
}

// Value - value of the current node
func (it Iterator[K, T]) Value() T {
	return deref(it.node).value
}

// SetValue - replace the value of the current node, the key cannot be
// changed
func (it Iterator[K, T]) SetValue(value T) {
	deref(it.node).value = value
}

// Next - iterator on the following node
func (it Iterator[K, T]) Next() Iterator[K, T] {
	return Iterator[K, T]{node: successor(deref(it.node))}
}

// IsEnd - true for the end of sequence
func (it Iterator[K, T]) IsEnd() bool {
	return nil == it.node
}

// Equal - true if both refer to the same node or both are at end
func (it Iterator[K, T]) Equal(other Iterator[K, T]) bool {
	return it.node == other.node
}

// Const - read only view of the same position
func (it Iterator[K, T]) Const() ConstIterator[K, T] {
	return ConstIterator[K, T]{node: it.node}
}

// Key - key of the current node
func (it ConstIterator[K, T]) Key() K {
	return deref(it.node).key
}

// Value - value of the current node
func (it ConstIterator[K, T]) Value() T {
	return deref(it.node).value
}

// Next - iterator on the following node
func (it ConstIterator[K, T]) Next() ConstIterator[K, T] {
	return ConstIterator[K, T]{node: successor(deref(it.node))}
}

// IsEnd - true for the end of sequence
func (it ConstIterator[K, T]) IsEnd() bool {
	return nil == it.node
}

// Equal - true if both refer to the same node or both are at end
func (it ConstIterator[K, T]) Equal(other ConstIterator[K, T]) bool {
	return it.node == other.node
}

func deref[K any, T any](p *node[K, T]) *node[K, T] {
	if nil == p {
		fault.Panic(fault.ErrEndIterator)
	}
	return p
}
