// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Check - verify parent links, node ownership, key order and the node
// count; returns the first inconsistency found
func (tree *Tree[K, T]) Check() error {
	n, err := tree.checkUp(tree.root, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrNodeCount
	}

	var previous *node[K, T]
	for p := leftmost(tree.root); nil != p; p = successor(p) {
		if nil != previous {
			if tree.compare(previous.key, p.key) >= 0 {
				return fault.ErrKeyOrder
			}
			if predecessor(p) != previous {
				return fault.ErrParentLink
			}
		}
		previous = p
	}
	return nil
}

// internal: consistency checker, returns the size of the sub-tree
func (tree *Tree[K, T]) checkUp(p *node[K, T], up *node[K, T]) (int, error) {
	if nil == p {
		return 0, nil
	}
	if p.up != up {
		return 0, fault.ErrParentLink
	}
	if p.owner != tree.owner {
		return 0, fault.ErrLineage
	}
	nl, err := tree.checkUp(p.left, p)
	if nil != err {
		return 0, err
	}
	nr, err := tree.checkUp(p.right, p)
	if nil != err {
		return 0, err
	}
	return 1 + nl + nr, nil
}
