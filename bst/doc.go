// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an ordered key/value container held in a plain
// binary search tree with parent pointers to allow iteration through
// the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The tree does not balance itself; insertion order determines its
// shape.  Balance linearises the nodes and rebuilds a tree of minimal
// height on request.
//
// An insert with an existing key overwrites the data associated with
// that key.  Delete does not copy data between nodes, so an iterator
// on a node that was not removed stays valid across deletes of other
// nodes.  Clear, Balance and the removal of its own node make an
// iterator stale; stale iterators must not be advanced.
package bst
