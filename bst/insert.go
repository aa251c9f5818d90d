// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Insert - insert a new node into the tree, or overwrite the value of
// the node that already holds key
func (tree *Tree[K, T]) Insert(key K, value T) {
	if nil == tree.compare {
		fault.Panic(fault.ErrMissingComparator)
	}

	var parent *node[K, T]
	p := tree.root
	depth := 0
	direction := 0

	for nil != p {
		parent = p
		direction = tree.compare(key, p.key)
		switch {
		case direction > 0: // key > p.key
			p = p.right
		case direction < 0: // key < p.key
			p = p.left
		default:
			p.value = value
			tree.notify(OpUpdate, key, value, depth)
			return
		}
		depth += 1
	}

	p = newNode(key, value, tree.owner)
	switch {
	case nil == parent:
		tree.root = p
	case direction > 0:
		parent.attachRight(p)
	default:
		parent.attachLeft(p)
	}

	if depth > tree.height {
		tree.height = depth
	}
	tree.count += 1
	tree.notify(OpInsert, key, value, depth)
}
