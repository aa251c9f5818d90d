// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Clone - deep copy of the tree; the copy shares no nodes with the
// original and starts without an observer
func (tree *Tree[K, T]) Clone() *Tree[K, T] {
	owner := &lineage{}
	return &Tree[K, T]{
		root:    clone(tree.root, owner),
		compare: tree.compare,
		count:   tree.count,
		height:  tree.height,
		owner:   owner,
	}
}

// Move - transfer all nodes to a new tree and leave this one empty
//
// iterators obtained before the move stay valid on the returned tree
func (tree *Tree[K, T]) Move() *Tree[K, T] {
	moved := &Tree[K, T]{
		root:     tree.root,
		compare:  tree.compare,
		count:    tree.count,
		height:   tree.height,
		observer: tree.observer,
		owner:    tree.owner,
	}

	tree.root = nil
	tree.count = 0
	tree.height = 0
	tree.observer = nil
	tree.owner = tree.owner.renew()

	return moved
}
