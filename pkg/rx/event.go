package rx

import "fmt"

// Kind identifies the type of an Event.
type Kind uint8

const (
	KindNext Kind = iota
	KindError
	KindCompleted
)

func (k Kind) String() string {
	switch k {
	case KindNext:
		return "next"
	case KindError:
		return "error"
	case KindCompleted:
		return "completed"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Event is a single notification pushed by an Observable.
// Value is meaningful for KindNext only, Err for KindError only.
type Event[T any] struct {
	Kind  Kind
	Value T
	Err   error
}

// Next creates a value event.
func Next[T any](v T) Event[T] {
	return Event[T]{Kind: KindNext, Value: v}
}

// Error creates an error event.
func Error[T any](err error) Event[T] {
	return Event[T]{Kind: KindError, Err: err}
}

// Completed creates a completion event.
func Completed[T any]() Event[T] {
	return Event[T]{Kind: KindCompleted}
}

// IsTerminal reports whether the event ends the sequence.
func (e Event[T]) IsTerminal() bool {
	return e.Kind == KindError || e.Kind == KindCompleted
}

// Element returns the carried value and true for Next events.
func (e Event[T]) Element() (T, bool) {
	if e.Kind != KindNext {
		var zero T
		return zero, false
	}
	return e.Value, true
}

func (e Event[T]) String() string {
	switch e.Kind {
	case KindNext:
		return fmt.Sprintf("next(%v)", e.Value)
	case KindError:
		return fmt.Sprintf("error(%v)", e.Err)
	default:
		return e.Kind.String()
	}
}

// Observer receives the events of one subscription.
type Observer[T any] func(Event[T])

// ObserverFunc adapts the three optional callbacks to an Observer.
// Nil callbacks drop the corresponding events.
func ObserverFunc[T any](onNext func(T), onError func(error), onCompleted func()) Observer[T] {
	return func(e Event[T]) {
		switch e.Kind {
		case KindNext:
			if onNext != nil {
				onNext(e.Value)
			}
		case KindError:
			if onError != nil {
				onError(e.Err)
			}
		case KindCompleted:
			if onCompleted != nil {
				onCompleted()
			}
		}
	}
}
