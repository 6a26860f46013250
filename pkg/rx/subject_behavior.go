package rx

// BehaviorSubject holds a current value. A new subscriber receives the current
// value right away, or the terminal event if the subject has terminated.
type BehaviorSubject[T any] struct {
	core  subjectCore[T]
	value T
}

// NewBehaviorSubject creates a subject whose current value is initial.
func NewBehaviorSubject[T any](initial T) *BehaviorSubject[T] {
	return &BehaviorSubject[T]{value: initial}
}

func (s *BehaviorSubject[T]) On(e Event[T]) {
	s.core.push(e, func(e Event[T]) {
		if e.Kind == KindNext {
			s.value = e.Value
		}
	})
}

func (s *BehaviorSubject[T]) OnNext(v T) {
	s.On(Next(v))
}

func (s *BehaviorSubject[T]) OnError(err error) {
	s.On(Error[T](err))
}

func (s *BehaviorSubject[T]) OnCompleted() {
	s.On(Completed[T]())
}

func (s *BehaviorSubject[T]) HasObservers() bool {
	return s.core.hasObservers()
}

func (s *BehaviorSubject[T]) IsDisposed() bool {
	return s.core.isDisposed()
}

func (s *BehaviorSubject[T]) AsObservable() Observable[T] {
	return Create(s.Observe)
}

// Value returns the current value. It fails with the terminating error once
// the subject errored and with ErrDisposed once it was disposed.
func (s *BehaviorSubject[T]) Value() (T, error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()

	var zero T
	switch {
	case s.core.disposed:
		return zero, ErrDisposed
	case s.core.stopped && s.core.stopEvent.Kind == KindError:
		return zero, s.core.stopEvent.Err
	default:
		return s.value, nil
	}
}

func (s *BehaviorSubject[T]) Observe(observer Observer[T]) Disposable {
	s.core.mu.Lock()
	if s.core.disposed {
		s.core.mu.Unlock()
		observer(Error[T](ErrDisposed))
		return NopDisposable()
	}
	if s.core.stopped {
		stopEvent := s.core.stopEvent
		s.core.mu.Unlock()
		observer(stopEvent)
		return NopDisposable()
	}
	rec := s.core.add(observer)
	current := s.value
	s.core.mu.Unlock()

	observer(Next(current))
	return s.core.unsubscriber(rec)
}

func (s *BehaviorSubject[T]) Subscribe(onNext func(T), onError func(error), onCompleted func()) *Subscription {
	return subscribe[T](s, onNext, onError, onCompleted)
}

func (s *BehaviorSubject[T]) Dispose() {
	s.core.mu.Lock()
	s.core.dispose()
	var zero T
	s.value = zero
	s.core.mu.Unlock()
}
