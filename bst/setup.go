// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/bstree/fault"
)

// CompareFunc - ordering of keys: negative if a < b, zero if a == b
// and positive if a > b
type CompareFunc[K any] func(a K, b K) int

// Item - a key type that carries its own ordering
type Item[K any] interface {
	Compare(K) int // for left/right ordering of items
}

// Tree - type to hold the root node of a tree
//
// create with New, NewOrdered or NewItem; a zero Tree is empty and can
// be read or cleared, but Insert panics with fault.ErrMissingComparator
type Tree[K any, T any] struct {
	root     *node[K, T]
	compare  CompareFunc[K]
	count    int
	height   int
	observer Observer
	quiet    bool // suppress per-node events while rebuilding
	owner    *lineage
}

// New - create an initially empty tree ordered by compare
func New[K any, T any](compare CompareFunc[K]) *Tree[K, T] {
	if nil == compare {
		fault.Panic(fault.ErrMissingComparator)
	}
	return &Tree[K, T]{
		root:    nil,
		compare: compare,
		owner:   &lineage{},
	}
}

// NewOrdered - create an empty tree for keys with a built-in ordering
func NewOrdered[K constraints.Ordered, T any]() *Tree[K, T] {
	return New[K, T](func(a K, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// NewItem - create an empty tree for keys implementing Item
func NewItem[K Item[K], T any]() *Tree[K, T] {
	return New[K, T](func(a K, b K) int {
		return a.Compare(b)
	})
}

// Empty - true if tree contains no data
func (tree *Tree[K, T]) Empty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, T]) Count() int {
	return tree.count
}

// Height - deepest insertion depth since the tree was created, cleared
// or balanced
//
// erasing nodes never lowers this value, so it can overstate the real
// height; use MaxDepth for an exact figure
func (tree *Tree[K, T]) Height() int {
	return tree.height
}

// MaxDepth - number of edges on the longest root to leaf path, -1 for
// an empty tree
func (tree *Tree[K, T]) MaxDepth() int {
	return levels(tree.root) - 1
}

func levels[K any, T any](p *node[K, T]) int {
	if nil == p {
		return 0
	}
	return 1 + max(levels(p.left), levels(p.right))
}

// Clear - drop every node
func (tree *Tree[K, T]) Clear() {
	tree.root = nil
	tree.count = 0
	tree.height = 0
	tree.owner = tree.owner.renew()
	tree.notifyTree(OpClear, 0)
}
