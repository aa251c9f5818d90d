// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/bstree/fault"
)

// Render - write one "key:value" line per entry in ascending key
// order, keys left aligned in a 12 column field
func (tree *Tree[K, T]) Render(w io.Writer) error {
	if tree.Empty() {
		return fault.ErrEmptyTree
	}
	for p := leftmost(tree.root); nil != p; p = successor(p) {
		if _, err := fmt.Fprintf(w, "%-12v:%v\n", p.key, p.value); nil != err {
			return err
		}
	}
	return nil
}

// String - rendered entries, or an error line for an empty tree
func (tree *Tree[K, T]) String() string {
	s := &strings.Builder{}
	if err := tree.Render(s); nil != err {
		return "Error: " + err.Error()
	}
	return s.String()
}

// to control the draw routine
type branch int

const (
	root branch = iota
	left
	right
)

// Draw - display an ASCII graphic representation of the tree, each
// node followed by its parent key; returns the number of levels
func (tree *Tree[K, T]) Draw(w io.Writer, printData bool) int {
	return drawTree(w, tree.root, "", root, printData)
}

// internal draw - returns the number of levels below and including p
func drawTree[K any, T any](w io.Writer, p *node[K, T], prefix string, br branch, printData bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = drawTree(w, p.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != p.up {
		up = p.up.key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v\n", p.key, p.value, up)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", p.key, up)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = drawTree(w, p.left, prefix+t, left, printData)
	}
	return 1 + max(rd, ld)
}
