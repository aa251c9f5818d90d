// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trace

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bst"
)

// Totals - number of events seen for each kind of mutation
type Totals struct {
	Inserted uint64 `json:"inserted"`
	Updated  uint64 `json:"updated"`
	Erased   uint64 `json:"erased"`
	Balanced uint64 `json:"balanced"`
	Cleared  uint64 `json:"cleared"`
}

// Tracer - an observer that logs every mutation
type Tracer struct {
	log    *logger.L
	totals Totals
}

// New - create a tracer writing to a logger channel
func New(log *logger.L) *Tracer {
	return &Tracer{
		log: log,
	}
}

// Observe - log a single mutation event
func (t *Tracer) Observe(e bst.Event) {
	switch e.Op {
	case bst.OpInsert:
		t.totals.Inserted += 1
		t.log.Debugf("created node (%v, %v) at depth: %d  nodes: %d", e.Key, e.Value, e.Depth, e.Count)
	case bst.OpUpdate:
		t.totals.Updated += 1
		t.log.Debugf("updated node %v with value: %v at depth: %d", e.Key, e.Value, e.Depth)
	case bst.OpErase:
		t.totals.Erased += 1
		t.log.Infof("erased node (%v, %v) from depth: %d  nodes: %d", e.Key, e.Value, e.Depth, e.Count)
	case bst.OpBalance:
		t.totals.Balanced += 1
		t.log.Infof("balanced: %d nodes  height: %d", e.Count, e.Depth)
	case bst.OpClear:
		t.totals.Cleared += 1
		t.log.Info("cleared")
	default:
		t.log.Warnf("unknown operation: %d", e.Op)
	}
}

// Totals - events counted so far
func (t *Tracer) Totals() Totals {
	return t.totals
}
