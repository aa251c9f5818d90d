// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trace_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/trace"
)

const (
	dir      = "testing"
	category = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "debug",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func TestTotals(t *testing.T) {
	tracer := trace.New(logger.New(category))

	tree := bst.NewOrdered[string, int]()
	tree.SetObserver(tracer)

	tree.Insert("b", 2)
	tree.Insert("a", 1)
	tree.Insert("c", 3)
	tree.Insert("a", 10)
	tree.Erase("b")
	tree.Erase("missing")
	tree.Balance()
	tree.Clear()

	assert.Equal(t, trace.Totals{
		Inserted: 3,
		Updated:  1,
		Erased:   1,
		Balanced: 1,
		Cleared:  1,
	}, tracer.Totals())
}

func TestBalanceIsOneEvent(t *testing.T) {
	tracer := trace.New(logger.New(category))

	tree := bst.NewOrdered[int, int]()
	for i := 0; i < 50; i += 1 {
		tree.Insert(i, i)
	}
	tree.SetObserver(tracer)
	tree.Balance()

	assert.Equal(t, trace.Totals{Balanced: 1}, tracer.Totals())
}

func TestUnknownOperation(t *testing.T) {
	tracer := trace.New(logger.New(category))
	tracer.Observe(bst.Event{Op: bst.Operation(99)})
	assert.Equal(t, trace.Totals{}, tracer.Totals())
}
