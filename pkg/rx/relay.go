package rx

// PublishRelay is a PublishSubject that can never terminate.
type PublishRelay[T any] struct {
	subject *PublishSubject[T]
}

func NewPublishRelay[T any]() *PublishRelay[T] {
	return &PublishRelay[T]{subject: NewPublishSubject[T]()}
}

// Accept pushes v to the current subscribers.
func (r *PublishRelay[T]) Accept(v T) {
	r.subject.OnNext(v)
}

func (r *PublishRelay[T]) Observe(observer Observer[T]) Disposable {
	return r.subject.Observe(observer)
}

func (r *PublishRelay[T]) Subscribe(onNext func(T), onError func(error), onCompleted func()) *Subscription {
	return subscribe[T](r, onNext, onError, onCompleted)
}

func (r *PublishRelay[T]) HasObservers() bool {
	return r.subject.HasObservers()
}

func (r *PublishRelay[T]) AsObservable() Observable[T] {
	return Create(r.Observe)
}

// BehaviorRelay is a BehaviorSubject that can never terminate. Its current
// value can always be read synchronously.
type BehaviorRelay[T any] struct {
	subject *BehaviorSubject[T]
}

func NewBehaviorRelay[T any](initial T) *BehaviorRelay[T] {
	return &BehaviorRelay[T]{subject: NewBehaviorSubject(initial)}
}

// Accept replaces the current value and pushes it to the subscribers.
func (r *BehaviorRelay[T]) Accept(v T) {
	r.subject.OnNext(v)
}

// Value returns the last accepted value, or the initial one.
func (r *BehaviorRelay[T]) Value() T {
	// The wrapped subject is never terminated nor disposed, so there is no error.
	v, _ := r.subject.Value()
	return v
}

func (r *BehaviorRelay[T]) Observe(observer Observer[T]) Disposable {
	return r.subject.Observe(observer)
}

func (r *BehaviorRelay[T]) Subscribe(onNext func(T), onError func(error), onCompleted func()) *Subscription {
	return subscribe[T](r, onNext, onError, onCompleted)
}

func (r *BehaviorRelay[T]) HasObservers() bool {
	return r.subject.HasObservers()
}

func (r *BehaviorRelay[T]) AsObservable() Observable[T] {
	return Create(r.Observe)
}

// ReplayRelay is a ReplaySubject that can never terminate.
type ReplayRelay[T any] struct {
	subject *ReplaySubject[T]
}

// NewReplayRelay creates a relay replaying up to bufferSize values.
func NewReplayRelay[T any](bufferSize int) *ReplayRelay[T] {
	return &ReplayRelay[T]{subject: NewReplaySubject[T](bufferSize)}
}

func (r *ReplayRelay[T]) Accept(v T) {
	r.subject.OnNext(v)
}

func (r *ReplayRelay[T]) Observe(observer Observer[T]) Disposable {
	return r.subject.Observe(observer)
}

func (r *ReplayRelay[T]) Subscribe(onNext func(T), onError func(error), onCompleted func()) *Subscription {
	return subscribe[T](r, onNext, onError, onCompleted)
}

func (r *ReplayRelay[T]) HasObservers() bool {
	return r.subject.HasObservers()
}

func (r *ReplayRelay[T]) AsObservable() Observable[T] {
	return Create(r.Observe)
}
