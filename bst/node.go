// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// lineage identifies the nodes a tree currently owns; it is replaced
// whenever the tree drops all of its nodes at once
type lineage struct {
	generation uint64
}

func (l *lineage) renew() *lineage {
	if nil == l {
		return &lineage{}
	}
	return &lineage{generation: l.generation + 1}
}

// a node in the tree
type node[K any, T any] struct {
	left  *node[K, T] // left sub-tree
	right *node[K, T] // right sub-tree
	up    *node[K, T] // points to parent node, not an owner
	owner *lineage    // nil once the node is removed
	key   K           // key part for ordering
	value T           // value part for data storage
}

func newNode[K any, T any](key K, value T, owner *lineage) *node[K, T] {
	return &node[K, T]{
		key:   key,
		value: value,
		owner: owner,
	}
}

// put a sub-tree in the left slot and point it back at p
func (p *node[K, T]) attachLeft(child *node[K, T]) {
	if nil != child {
		child.up = p
	}
	p.left = child
}

// put a sub-tree in the right slot and point it back at p
func (p *node[K, T]) attachRight(child *node[K, T]) {
	if nil != child {
		child.up = p
	}
	p.right = child
}

// clear all links of a removed node so it cannot keep any part of the
// tree reachable
func (p *node[K, T]) detach() {
	p.left = nil
	p.right = nil
	p.up = nil
	p.owner = nil
}

// number of edges between a node and the root
func (p *node[K, T]) depth() int {
	d := 0
	for up := p.up; nil != up; up = up.up {
		d += 1
	}
	return d
}

// deep copy of a sub-tree, every node stamped with owner
func clone[K any, T any](old *node[K, T], owner *lineage) *node[K, T] {
	if nil == old {
		return nil
	}
	p := newNode(old.key, old.value, owner)
	p.attachLeft(clone(old.left, owner))
	p.attachRight(clone(old.right, owner))
	return p
}
