package rx

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"
)

// observerRecord is one active subscription of a subject. Records are
// compared by pointer, never by the observer they hold.
type observerRecord[T any] struct {
	observer Observer[T]
	disposed atomic.Bool
}

// subjectCore keeps the subscriber list shared by every subject variant.
//
// The observers slice is copy-on-write: a slice handed out for delivery is
// never mutated afterwards, so subscribing or disposing during delivery cannot
// corrupt an iteration in progress. The per-record flag stops delivery to a
// record disposed by an earlier callback of the same dispatch.
//
// Pushes are serialized: an event pushed while another one is being
// delivered, from a callback or from another goroutine, is queued and
// delivered by the push already in progress once every observer saw the
// current event.
//
// mu is never held while user callbacks run.
type subjectCore[T any] struct {
	mu        sync.Mutex
	observers []*observerRecord[T]
	stopped   bool
	stopEvent Event[T]
	disposed  bool
	emitting  bool
	pending   *queue.Queue
}

// delivery is an accepted event with the observers it was accepted for.
type delivery[T any] struct {
	observers []*observerRecord[T]
	event     Event[T]
}

// add registers observer. Callers hold mu.
func (c *subjectCore[T]) add(observer Observer[T]) *observerRecord[T] {
	rec := &observerRecord[T]{observer: observer}
	c.observers = append(slices.Clip(c.observers), rec)
	return rec
}

func (c *subjectCore[T]) remove(rec *observerRecord[T]) {
	rec.disposed.Store(true)

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.Index(c.observers, rec)
	if idx < 0 {
		return
	}
	next := make([]*observerRecord[T], 0, len(c.observers)-1)
	next = append(next, c.observers[:idx]...)
	next = append(next, c.observers[idx+1:]...)
	c.observers = next
}

// unsubscriber returns the Disposable removing rec from the subject.
func (c *subjectCore[T]) unsubscriber(rec *observerRecord[T]) Disposable {
	return NewDisposable(func() { c.remove(rec) })
}

// accept records e as the latest event and returns the observers that must
// receive it. ok is false when the subject no longer accepts events.
// Callers hold mu.
func (c *subjectCore[T]) accept(e Event[T]) (observers []*observerRecord[T], ok bool) {
	if c.stopped || c.disposed {
		return nil, false
	}
	observers = c.observers
	if e.IsTerminal() {
		c.stopped = true
		c.stopEvent = e
		c.observers = nil
	}
	return observers, true
}

// push accepts e and delivers it after the deliveries already queued.
// onAccept runs under mu when the event is accepted, so subject state
// always reflects the latest pushed event even before it is delivered.
func (c *subjectCore[T]) push(e Event[T], onAccept func(Event[T])) {
	c.mu.Lock()
	observers, ok := c.accept(e)
	if !ok {
		c.mu.Unlock()
		return
	}
	if onAccept != nil {
		onAccept(e)
	}
	if c.emitting {
		if c.pending == nil {
			c.pending = queue.New()
		}
		c.pending.Add(delivery[T]{observers: observers, event: e})
		c.mu.Unlock()
		return
	}
	c.emitting = true
	c.mu.Unlock()

	for {
		dispatch(observers, e)

		c.mu.Lock()
		if c.pending == nil || c.pending.Length() == 0 {
			c.emitting = false
			c.mu.Unlock()
			return
		}
		next, _ := c.pending.Remove().(delivery[T])
		c.mu.Unlock()
		observers, e = next.observers, next.event
	}
}

func (c *subjectCore[T]) hasObservers() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.observers) > 0
}

// dispose drops every subscriber. Callers hold mu.
func (c *subjectCore[T]) dispose() {
	c.disposed = true
	c.pending = nil
	for _, rec := range c.observers {
		rec.disposed.Store(true)
	}
	c.observers = nil
}

func (c *subjectCore[T]) isDisposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

func dispatch[T any](observers []*observerRecord[T], e Event[T]) {
	for _, rec := range observers {
		if rec.disposed.Load() {
			continue
		}
		rec.observer(e)
	}
}

// subscribe adapts Observe to the three callback form.
func subscribe[T any](src Source[T], onNext func(T), onError func(error), onCompleted func()) *Subscription {
	return newSubscription(src.Observe(ObserverFunc(onNext, onError, onCompleted)))
}
