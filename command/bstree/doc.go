// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bstree - exercise the bst container from the command line
//
// load and draw build a tree from the entries in a Lua configuration
// file; random measures the effect of Balance on a shuffled tree.
package main
