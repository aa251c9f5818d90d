// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

//go:generate mockgen -source=observer.go -destination=mocks/observer.go -package=mocks

// Operation - kind of tree mutation reported to an Observer
type Operation int

// mutations
const (
	OpInsert  Operation = iota // new node created
	OpUpdate                   // value of an existing key overwritten
	OpErase                    // node removed
	OpBalance                  // tree rebuilt
	OpClear                    // all nodes dropped
)

// String - name of the operation for log output
func (op Operation) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	case OpErase:
		return "erase"
	case OpBalance:
		return "balance"
	case OpClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Event - details of a single mutation
//
// Key and Value are nil for balance and clear; Depth is the depth of
// the affected node, or the new height after a balance; Count is the
// number of nodes after the mutation
type Event struct {
	Op    Operation
	Key   interface{}
	Value interface{}
	Depth int
	Count int
}

// Observer - receives mutation events from a tree
type Observer interface {
	Observe(Event)
}

// SetObserver - set or clear (with nil) the mutation observer
func (tree *Tree[K, T]) SetObserver(observer Observer) {
	tree.observer = observer
}

// report a change to a single node; key and value are only boxed
// when an observer is listening
func (tree *Tree[K, T]) notify(op Operation, key K, value T, depth int) {
	if nil == tree.observer || tree.quiet {
		return
	}
	tree.observer.Observe(Event{
		Op:    op,
		Key:   key,
		Value: value,
		Depth: depth,
		Count: tree.count,
	})
}

// report a change to the whole tree
func (tree *Tree[K, T]) notifyTree(op Operation, depth int) {
	if nil == tree.observer || tree.quiet {
		return
	}
	tree.observer.Observe(Event{
		Op:    op,
		Depth: depth,
		Count: tree.count,
	})
}
