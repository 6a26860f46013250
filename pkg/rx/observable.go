package rx

import "sync/atomic"

// Source is anything that can be observed: Observable, subjects and relays.
type Source[T any] interface {
	// Observe starts delivering events to observer and returns the handle
	// that stops the delivery.
	Observe(observer Observer[T]) Disposable
}

// Observable describes how to produce a sequence of events for a subscriber.
// The zero value fails every subscription with ErrNilSource.
type Observable[T any] struct {
	produce func(Observer[T]) Disposable
}

// Create builds an Observable from a producer function. The producer runs once
// per subscription and returns the teardown for that subscription; nil means
// there is nothing to release.
//
// Events pushed after a terminal event or after the subscription was disposed
// are dropped, and the teardown runs as soon as the sequence terminates.
func Create[T any](produce func(Observer[T]) Disposable) Observable[T] {
	return Observable[T]{produce: produce}
}

// Wrap returns src as an Observable so that method operators can be chained
// on subjects and relays.
func Wrap[T any](src Source[T]) Observable[T] {
	if o, ok := src.(Observable[T]); ok {
		return o
	}
	return Create(func(observer Observer[T]) Disposable {
		return observe(src, observer)
	})
}

// Observe implements Source.
func (o Observable[T]) Observe(observer Observer[T]) Disposable {
	if observer == nil {
		observer = func(Event[T]) {}
	}
	if o.produce == nil {
		observer(Error[T](ErrNilSource))
		return NopDisposable()
	}

	s := &sink[T]{observer: observer}
	s.teardown.Set(o.produce(s.on))
	return s
}

// Subscribe delivers values, the error and the completion to the given
// callbacks. Any callback may be nil.
func (o Observable[T]) Subscribe(onNext func(T), onError func(error), onCompleted func()) *Subscription {
	return newSubscription(o.Observe(ObserverFunc(onNext, onError, onCompleted)))
}

// SubscribeEvent delivers every event, terminal ones included, to fn.
func (o Observable[T]) SubscribeEvent(fn func(Event[T])) *Subscription {
	return newSubscription(o.Observe(fn))
}

func (o Observable[T]) AsObservable() Observable[T] {
	return o
}

// sink guards one subscription: it enforces that nothing follows a terminal
// event and releases the producer's resources once the sequence ends.
type sink[T any] struct {
	observer Observer[T]
	stopped  atomic.Bool
	teardown SingleAssignmentDisposable
}

func (s *sink[T]) on(e Event[T]) {
	if s.stopped.Load() {
		return
	}
	if !e.IsTerminal() {
		s.observer(e)
		return
	}
	if !s.stopped.CompareAndSwap(false, true) {
		return
	}
	s.observer(e)
	s.teardown.Dispose()
}

func (s *sink[T]) Dispose() {
	s.stopped.Store(true)
	s.teardown.Dispose()
}

// observe subscribes observer to src, failing fast on a nil source.
func observe[T any](src Source[T], observer Observer[T]) Disposable {
	if src == nil {
		observer(Error[T](ErrNilSource))
		return NopDisposable()
	}
	return src.Observe(observer)
}

// stop converts a terminal event to another element type.
func stop[U, T any](e Event[T]) Event[U] {
	if e.Kind == KindError {
		return Error[U](e.Err)
	}
	return Completed[U]()
}
