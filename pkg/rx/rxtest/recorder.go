// Package rxtest contains helpers for testing code built on package rx.
package rxtest

import (
	"sync"

	"github.com/dmitrymomot/rxkit/pkg/rx"
)

// Recorder records the events delivered to its observer.
//
// Recorder is safe for concurrent use.
type Recorder[T any] struct {
	mu     sync.Mutex
	events []rx.Event[T]
}

// NewRecorder constructs an empty Recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// Observer returns the observer that appends to r.
func (r *Recorder[T]) Observer() rx.Observer[T] {
	return r.Record
}

// Record appends e.
func (r *Recorder[T]) Record(e rx.Event[T]) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Subscribe observes src with r and returns the subscription handle.
func (r *Recorder[T]) Subscribe(src rx.Source[T]) rx.Disposable {
	return src.Observe(r.Record)
}

// Events returns a snapshot copy of the recorded events.
func (r *Recorder[T]) Events() []rx.Event[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]rx.Event[T], len(r.events))
	copy(cp, r.events)
	return cp
}

// Values returns the payloads of the recorded Next events, in order.
func (r *Recorder[T]) Values() []T {
	evs := r.Events()
	out := make([]T, 0, len(evs))
	for _, e := range evs {
		if e.Kind == rx.KindNext {
			out = append(out, e.Value)
		}
	}
	return out
}

// Err returns the error of a recorded Error event, or nil.
func (r *Recorder[T]) Err() error {
	for _, e := range r.Events() {
		if e.Kind == rx.KindError {
			return e.Err
		}
	}
	return nil
}

// Completed reports whether a Completed event was recorded.
func (r *Recorder[T]) Completed() bool {
	for _, e := range r.Events() {
		if e.Kind == rx.KindCompleted {
			return true
		}
	}
	return false
}

// Terminated reports whether any terminal event was recorded.
func (r *Recorder[T]) Terminated() bool {
	for _, e := range r.Events() {
		if e.IsTerminal() {
			return true
		}
	}
	return false
}

// Reset clears the recorder.
func (r *Recorder[T]) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
