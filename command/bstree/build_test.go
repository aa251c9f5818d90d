// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"math/bits"
	"os"
	"slices"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/trace"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
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
	_ = os.RemoveAll(testingDirName)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func testMetadata(config *Configuration, logging bool) *metadata {
	return &metadata{
		config:  config,
		logging: logging,
		e:       io.Discard,
		w:       io.Discard,
	}
}

func TestBuildTree(t *testing.T) {
	config := &Configuration{
		Entries: []Entry{
			{Key: "delta", Value: "4"},
			{Key: "alpha", Value: "1"},
			{Key: "echo", Value: "5"},
			{Key: "charlie", Value: "3"},
			{Key: "alpha", Value: "one"},
		},
		Erase:   []string{"echo", "echo", "zulu"},
		Balance: true,
	}

	tree, summary, err := buildTree(testMetadata(config, true))
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "charlie", "delta"}, slices.Collect(tree.Keys()))
	v, ok := tree.Get("alpha")
	assert.True(t, ok)
	assert.Equal(t, "one", v)

	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 1, summary.Height)
	assert.Equal(t, 1, summary.MaxDepth)
	assert.Equal(t, []string{"echo"}, summary.Erased)
	assert.True(t, summary.Balanced)

	require.NotNil(t, summary.Events)
	assert.Equal(t, trace.Totals{
		Inserted: 4,
		Updated:  1,
		Erased:   1,
		Balanced: 1,
	}, *summary.Events)
}

func TestBuildTreeWithoutBalance(t *testing.T) {
	config := &Configuration{
		Entries: []Entry{
			{Key: "a", Value: "1"},
			{Key: "b", Value: "2"},
			{Key: "c", Value: "3"},
			{Key: "d", Value: "4"},
		},
		Erase: []string{"b"},
	}

	tree, summary, err := buildTree(testMetadata(config, false))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "c", "d"}, slices.Collect(tree.Keys()))
	assert.False(t, summary.Balanced)
	assert.Equal(t, 3, summary.Height, "erase does not lower the recorded height")
	assert.Equal(t, 2, summary.MaxDepth)
	assert.Nil(t, summary.Events, "no totals without logging")
}

func TestBuildTreeMissingConfiguration(t *testing.T) {
	_, _, err := buildTree(testMetadata(nil, false))
	assert.Equal(t, fault.ErrMissingConfigFile, err)
}

func TestRandomTree(t *testing.T) {
	for _, count := range []int{1, 10, 100, 1000} {
		result, err := randomTree(testMetadata(nil, true), count, 42)
		require.NoError(t, err)

		assert.Equal(t, count, result.Count)
		assert.Equal(t, int64(42), result.Seed)
		assert.Equal(t, result.Before.Height, result.Before.MaxDepth, "count: %d", count)
		assert.Equal(t, bits.Len(uint(count))-1, result.After.Height, "count: %d", count)
		assert.Equal(t, result.After.Height, result.After.MaxDepth, "count: %d", count)
		assert.LessOrEqual(t, result.After.Height, result.Before.Height, "count: %d", count)
	}
}

func TestRandomTreeIsRepeatable(t *testing.T) {
	first, err := randomTree(testMetadata(nil, false), 500, 7)
	require.NoError(t, err)
	second, err := randomTree(testMetadata(nil, false), 500, 7)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRandomTreeInvalidCount(t *testing.T) {
	for _, count := range []int{0, -1} {
		_, err := randomTree(testMetadata(nil, false), count, 1)
		assert.Equal(t, fault.ErrInvalidCount, err)
	}
}
