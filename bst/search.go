// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Find - iterator on the node holding key, or End() if absent
func (tree *Tree[K, T]) Find(key K) Iterator[K, T] {
	return Iterator[K, T]{node: tree.search(key)}
}

// Contains - true if key is present
func (tree *Tree[K, T]) Contains(key K) bool {
	return nil != tree.search(key)
}

// Get - the value stored under key
func (tree *Tree[K, T]) Get(key K) (T, bool) {
	p := tree.search(key)
	if nil == p {
		var zero T
		return zero, false
	}
	return p.value, true
}

func (tree *Tree[K, T]) search(key K) *node[K, T] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0: // key < p.key
			p = p.left
		case c > 0: // key > p.key
			p = p.right
		default:
			return p
		}
	}
	return nil
}
