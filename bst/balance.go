// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// ranges shorter than this are inserted in order
const balanceThreshold = 3

// Pair - one key and its value
type Pair[K any, T any] struct {
	Key   K
	Value T
}

// Pairs - all entries in ascending key order
func (tree *Tree[K, T]) Pairs() []Pair[K, T] {
	pairs := make([]Pair[K, T], 0, tree.count)
	for p := leftmost(tree.root); nil != p; p = successor(p) {
		pairs = append(pairs, Pair[K, T]{Key: p.key, Value: p.value})
	}
	return pairs
}

// Balance - rebuild the tree with minimal height
//
// all nodes are replaced, so every existing iterator becomes stale
func (tree *Tree[K, T]) Balance() {
	pairs := tree.Pairs()

	tree.root = nil
	tree.count = 0
	tree.height = 0
	tree.owner = tree.owner.renew()

	tree.quiet = true
	tree.rebuild(pairs)
	tree.quiet = false

	tree.notifyTree(OpBalance, tree.height)
}

// insert the middle of an ascending range first so that it becomes
// the root of the sub-tree built from the rest of the range
func (tree *Tree[K, T]) rebuild(pairs []Pair[K, T]) {
	if len(pairs) < balanceThreshold {
		for _, item := range pairs {
			tree.Insert(item.Key, item.Value)
		}
		return
	}
	middle := len(pairs) / 2
	tree.Insert(pairs[middle].Key, pairs[middle].Value)
	tree.rebuild(pairs[:middle])
	tree.rebuild(pairs[middle+1:])
}
