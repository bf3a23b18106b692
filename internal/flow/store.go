// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flow

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-login-flow/internal/logger"
)

var (
	// ErrFeedbackEvent is returned by [Store.Dispatch] when the caller tries
	// to inject an event only effect execution may produce.
	ErrFeedbackEvent = errors.New("feedback events cannot be dispatched externally")

	// ErrStoreStopped is returned by [Store.Dispatch] after the store loop
	// has terminated.
	ErrStoreStopped = errors.New("store is stopped")
)

// eventQueueSize bounds how far the UI can run ahead of the reduction loop.
// Reduction is synchronous and cheap, so a small buffer suffices.
const eventQueueSize = 16

// Store is the feedback loop orchestrating the login screen. It owns the
// current [StateModel], consumes a single merged event stream on one
// goroutine (UI events dispatched from outside, feedback events spliced in
// by effect execution), reduces each event in arrival order and publishes
// deduplicated snapshots.
//
// The serialized loop is what upholds the causal-ordering guarantee: a
// snapshot always reflects the most recently processed event, and
// subscribers never observe states out of order.
type Store struct {
	executor *Executor
	log      *logger.Logger

	events    chan Event
	snapshots chan StateModel
	done      chan struct{}
	stopOnce  sync.Once
	stop      context.CancelFunc

	mu    sync.RWMutex
	model StateModel
}

// NewStore constructs a [Store] holding initial as its first model. The loop
// is not running until [Store.Start] is called.
func NewStore(initial StateModel, executor *Executor, log *logger.Logger) *Store {
	return &Store{
		executor:  executor,
		log:       log,
		events:    make(chan Event, eventQueueSize),
		snapshots: make(chan StateModel, 1),
		done:      make(chan struct{}),
		model:     initial,
	}
}

// Start launches the reduction loop. The initial model is published
// immediately so subscribers can render their first frame. The loop runs
// until ctx is cancelled or [Store.Stop] is called.
func (s *Store) Start(ctx context.Context) {
	ctx, s.stop = context.WithCancel(ctx)

	s.publish(s.Model())
	go s.loop(ctx)
}

// Stop terminates the reduction loop. In-flight effects run to completion
// but their results are discarded; no cancellation is propagated to the
// login call itself beyond context cancellation.
func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		if s.stop != nil {
			s.stop()
		}
		close(s.done)
	})
}

// Dispatch feeds a UI-originated event into the loop. Feedback events are
// rejected with [ErrFeedbackEvent]; after the store stopped it returns
// [ErrStoreStopped].
func (s *Store) Dispatch(event Event) error {
	if _, ok := event.(FeedbackEvent); ok {
		return ErrFeedbackEvent
	}

	// checked first so a stopped store never accepts into a dead queue
	select {
	case <-s.done:
		return ErrStoreStopped
	default:
	}

	select {
	case s.events <- event:
		return nil
	case <-s.done:
		return ErrStoreStopped
	}
}

// Snapshots returns the channel deduplicated model snapshots are published
// on. The channel conflates: a slow consumer observes the latest snapshot,
// never a stale one, and never out of causal order.
func (s *Store) Snapshots() <-chan StateModel {
	return s.snapshots
}

// Model returns a copy of the current model.
func (s *Store) Model() StateModel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.model
}

func (s *Store) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-s.events:
			s.process(ctx, event)
		}
	}
}

// process performs one turn of the loop: reduce, store, publish if changed,
// launch requested effects. It runs only on the loop goroutine.
func (s *Store) process(ctx context.Context, event Event) {
	prev := s.Model()
	next, effects := Reduce(prev, event)

	s.mu.Lock()
	s.model = next
	s.mu.Unlock()

	s.log.Debug().
		Str("event", eventName(event)).
		Str("phase", next.Phase.Kind.String()).
		Int("effects", len(effects)).
		Msg("event reduced")

	if next != prev {
		s.publish(next)
	}

	for effect := range effects {
		go s.runEffect(ctx, effect)
	}
}

// runEffect drains one triggered effect and splices its feedback event back
// into the merged stream.
func (s *Store) runEffect(ctx context.Context, effect Effect) {
	for event := range s.executor.Trigger(ctx, effect) {
		select {
		case s.events <- event:
		case <-ctx.Done():
			return
		}
	}
}

// publish conflates snapshots into the single-slot channel. Only the loop
// goroutine sends, so the retry terminates: either the slot is free or the
// stale snapshot gets dropped first.
func (s *Store) publish(model StateModel) {
	for {
		select {
		case s.snapshots <- model:
			return
		default:
			select {
			case <-s.snapshots:
			default:
			}
		}
	}
}

func eventName(event Event) string {
	switch event.(type) {
	case UsernameChanged:
		return "username_changed"
	case PasswordChanged:
		return "password_changed"
	case LoginButtonTapped:
		return "login_button_tapped"
	case PasswordToggled:
		return "password_toggled"
	case ErrorMessageDismissed:
		return "error_message_dismissed"
	case LoginRequestSucceeded:
		return "login_request_succeeded"
	case LoginRequestFailed:
		return "login_request_failed"
	default:
		return "unknown"
	}
}
