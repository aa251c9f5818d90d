// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// RootKey - key held by the root node
func RootKey[K any, T any](tree *Tree[K, T]) (K, bool) {
	if nil == tree.root {
		var zero K
		return zero, false
	}
	return tree.root.key, true
}

// ParentKey - key of the parent of the node an iterator refers to
func ParentKey[K any, T any](it Iterator[K, T]) (K, bool) {
	if nil == it.node || nil == it.node.up {
		var zero K
		return zero, false
	}
	return it.node.up.key, true
}
