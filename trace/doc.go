// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package trace - record tree mutations on a logger channel
//
// A Tracer is installed on a tree with SetObserver; it writes one log
// line per mutation and keeps running totals for a summary.
package trace
