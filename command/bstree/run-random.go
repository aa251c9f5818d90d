// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"

	"github.com/bitmark-inc/logger"
	"github.com/samber/lo"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/trace"
)

type shape struct {
	Height   int `json:"height"`
	MaxDepth int `json:"maxDepth"`
}

type randomResult struct {
	Count  int   `json:"count"`
	Seed   int64 `json:"seed"`
	Before shape `json:"before"`
	After  shape `json:"after"`
}

func runRandom(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	result, err := randomTree(m, c.Int("count"), c.Int64("seed"))
	if nil != err {
		return err
	}
	return printJson(m.w, result)
}

// insert count keys in a shuffled order and measure the tree before
// and after balancing
func randomTree(m *metadata, count int, seed int64) (*randomResult, error) {

	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	tree := bst.NewOrdered[int, int]()
	if m.logging {
		tree.SetObserver(trace.New(logger.New("tree")))
	}

	keys := lo.Range(count)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(keys), func(i int, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	for i, key := range keys {
		tree.Insert(key, i)
	}

	result := &randomResult{
		Count: tree.Count(),
		Seed:  seed,
		Before: shape{
			Height:   tree.Height(),
			MaxDepth: tree.MaxDepth(),
		},
	}

	tree.Balance()

	result.After = shape{
		Height:   tree.Height(),
		MaxDepth: tree.MaxDepth(),
	}

	if err := tree.Check(); nil != err {
		fault.Criticalf("random tree check failed: %s", err)
		return nil, err
	}
	return result, nil
}
