package rx

import "github.com/eapache/queue"

const unboundedReplay = -1

// ReplaySubject buffers the most recent values and replays them to every new
// subscriber before live events. After termination the buffer and the
// terminal event are kept and replayed to every later subscriber.
type ReplaySubject[T any] struct {
	core   subjectCore[T]
	buffer *queue.Queue
	size   int
}

// NewReplaySubject creates a subject replaying up to bufferSize values.
// A zero size replays only the terminal event. Negative sizes panic.
func NewReplaySubject[T any](bufferSize int) *ReplaySubject[T] {
	if bufferSize < 0 {
		panic("rx: replay buffer size must not be negative")
	}
	return &ReplaySubject[T]{buffer: queue.New(), size: bufferSize}
}

// NewReplayAllSubject creates a subject replaying every value it received.
func NewReplayAllSubject[T any]() *ReplaySubject[T] {
	return &ReplaySubject[T]{buffer: queue.New(), size: unboundedReplay}
}

func (s *ReplaySubject[T]) On(e Event[T]) {
	s.core.push(e, func(e Event[T]) {
		if e.Kind == KindNext {
			s.store(e.Value)
		}
	})
}

// store appends v and evicts the oldest values beyond the buffer size.
// Callers hold mu.
func (s *ReplaySubject[T]) store(v T) {
	if s.size == 0 {
		return
	}
	s.buffer.Add(v)
	if s.size == unboundedReplay {
		return
	}
	for s.buffer.Length() > s.size {
		s.buffer.Remove()
	}
}

// buffered copies the buffer. Callers hold mu.
func (s *ReplaySubject[T]) buffered() []T {
	values := make([]T, 0, s.buffer.Length())
	for i := 0; i < s.buffer.Length(); i++ {
		v, _ := s.buffer.Get(i).(T)
		values = append(values, v)
	}
	return values
}

func (s *ReplaySubject[T]) OnNext(v T) {
	s.On(Next(v))
}

func (s *ReplaySubject[T]) OnError(err error) {
	s.On(Error[T](err))
}

func (s *ReplaySubject[T]) OnCompleted() {
	s.On(Completed[T]())
}

func (s *ReplaySubject[T]) HasObservers() bool {
	return s.core.hasObservers()
}

func (s *ReplaySubject[T]) IsDisposed() bool {
	return s.core.isDisposed()
}

func (s *ReplaySubject[T]) AsObservable() Observable[T] {
	return Create(s.Observe)
}

func (s *ReplaySubject[T]) Observe(observer Observer[T]) Disposable {
	s.core.mu.Lock()
	if s.core.disposed {
		s.core.mu.Unlock()
		observer(Error[T](ErrDisposed))
		return NopDisposable()
	}
	replay := s.buffered()
	if s.core.stopped {
		stopEvent := s.core.stopEvent
		s.core.mu.Unlock()
		for _, v := range replay {
			observer(Next(v))
		}
		observer(stopEvent)
		return NopDisposable()
	}
	rec := s.core.add(observer)
	s.core.mu.Unlock()

	for _, v := range replay {
		if rec.disposed.Load() {
			break
		}
		observer(Next(v))
	}
	return s.core.unsubscriber(rec)
}

func (s *ReplaySubject[T]) Subscribe(onNext func(T), onError func(error), onCompleted func()) *Subscription {
	return subscribe[T](s, onNext, onError, onCompleted)
}

// Dispose releases all observers and the buffer.
func (s *ReplaySubject[T]) Dispose() {
	s.core.mu.Lock()
	s.core.dispose()
	s.buffer = queue.New()
	s.core.mu.Unlock()
}
