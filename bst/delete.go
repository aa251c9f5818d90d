// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Erase - removes a specific item from the tree, nothing happens if
// the key is not present
func (tree *Tree[K, T]) Erase(key K) {
	p := tree.search(key)
	if nil == p {
		return
	}
	tree.erase(p)
}

// EraseAt - removes the node an iterator refers to
//
// the iterator is stale afterwards; panics with fault.ErrEndIterator
// or fault.ErrStaleIterator if it does not denote a node of this tree
func (tree *Tree[K, T]) EraseAt(it Iterator[K, T]) {
	tree.erase(tree.validate(it.node))
}

// ensure a node taken from an iterator is live in this tree
func (tree *Tree[K, T]) validate(p *node[K, T]) *node[K, T] {
	if nil == p {
		fault.Panic(fault.ErrEndIterator)
	}
	if p.owner != tree.owner {
		fault.Panic(fault.ErrStaleIterator)
	}
	return p
}

// internal delete routine
func (tree *Tree[K, T]) erase(q *node[K, T]) {
	depth := q.depth()

	var r *node[K, T]
	switch {
	case nil != q.left && nil != q.right:
		r = leftmost(q.right)
		if r != q.right {
			// r is a left child deeper in the right sub-tree:
			// its right sub-tree takes its place
			r.up.attachLeft(r.right)
			r.attachRight(q.right)
		}
		r.attachLeft(q.left)
	case nil != q.left:
		r = q.left
	case nil != q.right:
		r = q.right
	}

	// put the replacement (possibly nil) where q was
	up := q.up
	switch {
	case nil == up:
		tree.root = r
		if nil != r {
			r.up = nil
		}
	case q == up.left:
		up.attachLeft(r)
	default:
		up.attachRight(r)
	}

	key := q.key
	value := q.value
	q.detach()
	tree.count -= 1
	tree.notify(OpErase, key, value, depth)
}
