// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrEmptyTree            = NotFoundError("printing empty tree")
	ErrEndIterator          = InvalidError("iterator is at end of sequence")
	ErrInvalidCount         = InvalidError("count must be positive")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyOrder             = ProcessError("keys are not in ascending order")
	ErrLineage              = ProcessError("node does not belong to tree")
	ErrMissingComparator    = InvalidError("key comparator is required")
	ErrMissingConfigFile    = NotFoundError("configuration file is required")
	ErrNodeCount            = ProcessError("node count does not match tree")
	ErrNotTable             = InvalidError("configuration did not return a table")
	ErrParentLink           = ProcessError("child does not point back to its parent")
	ErrStaleIterator        = InvalidError("iterator does not refer to a node in this tree")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
