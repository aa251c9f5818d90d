// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/trace"
)

type loadSummary struct {
	Count    int           `json:"count"`
	Height   int           `json:"height"`
	MaxDepth int           `json:"maxDepth"`
	Erased   []string      `json:"erased"`
	Balanced bool          `json:"balanced"`
	Events   *trace.Totals `json:"events,omitempty"`
}

func runLoad(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, summary, err := buildTree(m)
	if nil != err {
		return err
	}

	if c.Bool("table") {
		t := table.NewWriter()
		t.SetOutputMirror(m.w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "Key", "Value"})
		n := 0
		for k, v := range tree.All() {
			n += 1
			t.AppendRow(table.Row{n, k, v})
		}
		t.AppendFooter(table.Row{"Total", n, ""})
		t.Render()
	} else if err := tree.Render(m.w); nil != err {
		fmt.Fprintf(m.e, "Error: %s\n", err)
	}

	return report(m, summary)
}

func runDraw(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, summary, err := buildTree(m)
	if nil != err {
		return err
	}

	levels := tree.Draw(m.w, c.Bool("data"))
	fmt.Fprintf(m.w, "levels: %d\n", levels)

	return report(m, summary)
}

// one line summary, full detail as JSON when verbose
func report(m *metadata, summary *loadSummary) error {
	fmt.Fprintf(m.w, "count: %d  height: %d  max depth: %d\n", summary.Count, summary.Height, summary.MaxDepth)
	if m.verbose {
		return printJson(m.e, summary)
	}
	return nil
}

// build a tree from the configured entries then apply erasures and
// the optional balance
func buildTree(m *metadata) (*bst.Tree[string, string], *loadSummary, error) {

	if nil == m.config {
		return nil, nil, fault.ErrMissingConfigFile
	}

	tree := bst.NewOrdered[string, string]()

	var tracer *trace.Tracer
	if m.logging {
		tracer = trace.New(logger.New("tree"))
		tree.SetObserver(tracer)
	}

	for _, e := range m.config.Entries {
		tree.Insert(e.Key, e.Value)
	}

	erased := lo.Filter(lo.Uniq(m.config.Erase), func(key string, _ int) bool {
		return tree.Contains(key)
	})
	for _, key := range erased {
		tree.Erase(key)
	}

	if m.config.Balance {
		tree.Balance()
	}

	if err := tree.Check(); nil != err {
		fault.Criticalf("tree check failed: %s", err)
		return nil, nil, err
	}

	summary := &loadSummary{
		Count:    tree.Count(),
		Height:   tree.Height(),
		MaxDepth: tree.MaxDepth(),
		Erased:   erased,
		Balanced: m.config.Balance,
	}
	if nil != tracer {
		totals := tracer.Totals()
		summary.Events = &totals
	}
	return tree, summary, nil
}
