// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// lowest node in a sub-tree
func leftmost[K any, T any](p *node[K, T]) *node[K, T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// highest node in a sub-tree
func rightmost[K any, T any](p *node[K, T]) *node[K, T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// node with the next highest key or nil if no more nodes
//
// only the links are followed, keys are never compared
func successor[K any, T any](p *node[K, T]) *node[K, T] {
	if nil != p.right {
		return leftmost(p.right)
	}
	up := p.up
	for nil != up && p == up.right {
		p = up
		up = p.up
	}
	return up
}

// node with the next lowest key or nil if no more nodes
func predecessor[K any, T any](p *node[K, T]) *node[K, T] {
	if nil != p.left {
		return rightmost(p.left)
	}
	up := p.up
	for nil != up && p == up.left {
		p = up
		up = p.up
	}
	return up
}
