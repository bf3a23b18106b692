// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package flow implements the unidirectional state core of the login screen.
//
// User input and network results enter as values of the closed [Event] union.
// The pure [Reduce] function folds each event into a new immutable
// [StateModel] and a set of [Effect] requests. The [Store] owns the current
// model, runs the reduction loop on a single goroutine, executes requested
// effects asynchronously through an [Executor], and feeds their results back
// into the same event stream. Subscribers receive deduplicated [StateModel]
// snapshots and derive a rendering [ViewModel] via [Project].
//
// The only shared mutable reference is the model held by the Store; every
// other component operates on value copies.
package flow
