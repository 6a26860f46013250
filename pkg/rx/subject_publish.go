package rx

// PublishSubject broadcasts events to the observers subscribed at the time
// the event is pushed. Late subscribers see nothing that happened before they
// subscribed, including the terminal event.
type PublishSubject[T any] struct {
	core subjectCore[T]
}

func NewPublishSubject[T any]() *PublishSubject[T] {
	return &PublishSubject[T]{}
}

// On pushes e to every active observer. Events after a terminal event or
// after Dispose are ignored.
func (s *PublishSubject[T]) On(e Event[T]) {
	s.core.push(e, nil)
}

func (s *PublishSubject[T]) OnNext(v T) {
	s.On(Next(v))
}

func (s *PublishSubject[T]) OnError(err error) {
	s.On(Error[T](err))
}

func (s *PublishSubject[T]) OnCompleted() {
	s.On(Completed[T]())
}

func (s *PublishSubject[T]) HasObservers() bool {
	return s.core.hasObservers()
}

func (s *PublishSubject[T]) IsDisposed() bool {
	return s.core.isDisposed()
}

func (s *PublishSubject[T]) AsObservable() Observable[T] {
	return Create(s.Observe)
}

// Observe implements Source.
func (s *PublishSubject[T]) Observe(observer Observer[T]) Disposable {
	s.core.mu.Lock()
	if s.core.disposed {
		s.core.mu.Unlock()
		observer(Error[T](ErrDisposed))
		return NopDisposable()
	}
	if s.core.stopped {
		s.core.mu.Unlock()
		return NopDisposable()
	}
	rec := s.core.add(observer)
	s.core.mu.Unlock()

	return s.core.unsubscriber(rec)
}

func (s *PublishSubject[T]) Subscribe(onNext func(T), onError func(error), onCompleted func()) *Subscription {
	return subscribe[T](s, onNext, onError, onCompleted)
}

// Dispose releases all observers. Subscribing afterwards fails with ErrDisposed.
func (s *PublishSubject[T]) Dispose() {
	s.core.mu.Lock()
	s.core.dispose()
	s.core.mu.Unlock()
}
