package rx

import "github.com/eapache/queue"

// observeAt subscribes an untyped observer to the i-th source of a combinator.
type observeAt func(i int, o Observer[any]) Disposable

// erase adapts an untyped observer to a typed source.
func erase[T any](o Observer[any]) Observer[T] {
	return func(e Event[T]) {
		switch e.Kind {
		case KindNext:
			o(Next[any](e.Value))
		case KindError:
			o(Error[any](e.Err))
		default:
			o(Completed[any]())
		}
	}
}

// cast recovers a typed value; nil interfaces become the zero value.
func cast[T any](v any) T {
	t, _ := v.(T)
	return t
}

func castAll[T any](values []any) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = cast[T](v)
	}
	return out
}

func sourcesAt[T any](sources []Source[T]) observeAt {
	return func(i int, o Observer[any]) Disposable {
		return observe(sources[i], erase[T](o))
	}
}

func pairAt[A, B any](a Source[A], b Source[B]) observeAt {
	return func(i int, o Observer[any]) Disposable {
		if i == 0 {
			return observe(a, erase[A](o))
		}
		return observe(b, erase[B](o))
	}
}

func tripleAt[A, B, C any](a Source[A], b Source[B], c Source[C]) observeAt {
	return func(i int, o Observer[any]) Disposable {
		switch i {
		case 0:
			return observe(a, erase[A](o))
		case 1:
			return observe(b, erase[B](o))
		default:
			return observe(c, erase[C](o))
		}
	}
}

// combineLatest emits selector(latest values) whenever any of the n sources
// emits, once each of them produced a value. The values slice passed to
// selector must not be retained.
func combineLatest[R any](n int, at observeAt, selector func([]any) R) Observable[R] {
	return Create(func(o Observer[R]) Disposable {
		if n == 0 {
			o(Completed[R]())
			return nil
		}
		group := NewCompositeDisposable()
		var (
			values    = make([]any, n)
			has       = make([]bool, n)
			done      = make([]bool, n)
			hasCount  int
			doneCount int
			stopped   bool
		)
		finish := func(e Event[R]) {
			if stopped {
				return
			}
			stopped = true
			o(e)
			group.Dispose()
		}

		for i := range n {
			if stopped {
				break
			}
			holder := new(SingleAssignmentDisposable)
			group.Add(holder)
			holder.Set(at(i, func(e Event[any]) {
				if stopped {
					return
				}
				switch e.Kind {
				case KindNext:
					values[i] = e.Value
					if !has[i] {
						has[i] = true
						hasCount++
					}
					if hasCount == n {
						o(Next(selector(values)))
					}
				case KindError:
					finish(Error[R](e.Err))
				case KindCompleted:
					if !done[i] {
						done[i] = true
						doneCount++
					}
					// A source that completed empty can never contribute a value.
					if doneCount == n || !has[i] {
						finish(Completed[R]())
					}
				}
			}))
		}
		return group
	})
}

// CombineLatest emits the latest value of every source each time one of them
// emits, once all of them produced at least one value.
func CombineLatest[T any](sources ...Source[T]) Observable[[]T] {
	return combineLatest(len(sources), sourcesAt(sources), castAll[T])
}

// CombineLatest2 combines the latest values of two sources with selector.
func CombineLatest2[A, B, R any](a Source[A], b Source[B], selector func(A, B) R) Observable[R] {
	return combineLatest(2, pairAt(a, b), func(v []any) R {
		return selector(cast[A](v[0]), cast[B](v[1]))
	})
}

// CombineLatest3 combines the latest values of three sources with selector.
func CombineLatest3[A, B, C, R any](a Source[A], b Source[B], c Source[C], selector func(A, B, C) R) Observable[R] {
	return combineLatest(3, tripleAt(a, b, c), func(v []any) R {
		return selector(cast[A](v[0]), cast[B](v[1]), cast[C](v[2]))
	})
}

// zip pairs the values of n sources strictly by position.
func zip[R any](n int, at observeAt, selector func([]any) R) Observable[R] {
	return Create(func(o Observer[R]) Disposable {
		if n == 0 {
			o(Completed[R]())
			return nil
		}
		group := NewCompositeDisposable()
		var (
			buffers = make([]*queue.Queue, n)
			done    = make([]bool, n)
			stopped bool
		)
		for i := range buffers {
			buffers[i] = queue.New()
		}
		finish := func(e Event[R]) {
			if stopped {
				return
			}
			stopped = true
			o(e)
			group.Dispose()
		}
		// exhausted reports whether a completed source has nothing left to pair.
		exhausted := func() bool {
			for i := range n {
				if done[i] && buffers[i].Length() == 0 {
					return true
				}
			}
			return false
		}
		ready := func() bool {
			for _, b := range buffers {
				if b.Length() == 0 {
					return false
				}
			}
			return true
		}

		for i := range n {
			if stopped {
				break
			}
			holder := new(SingleAssignmentDisposable)
			group.Add(holder)
			holder.Set(at(i, func(e Event[any]) {
				if stopped {
					return
				}
				switch e.Kind {
				case KindNext:
					buffers[i].Add(e.Value)
					if !ready() {
						return
					}
					values := make([]any, n)
					for j, b := range buffers {
						values[j] = b.Remove()
					}
					o(Next(selector(values)))
					if exhausted() {
						finish(Completed[R]())
					}
				case KindError:
					finish(Error[R](e.Err))
				case KindCompleted:
					done[i] = true
					if buffers[i].Length() == 0 {
						finish(Completed[R]())
					}
				}
			}))
		}
		return group
	})
}

// Zip emits a slice holding the n-th value of every source, for each n. It
// completes once a completed source has no buffered value left.
func Zip[T any](sources ...Source[T]) Observable[[]T] {
	return zip(len(sources), sourcesAt(sources), castAll[T])
}

// Zip2 pairs the values of two sources by position using selector.
func Zip2[A, B, R any](a Source[A], b Source[B], selector func(A, B) R) Observable[R] {
	return zip(2, pairAt(a, b), func(v []any) R {
		return selector(cast[A](v[0]), cast[B](v[1]))
	})
}

// Zip3 combines the values of three sources by position using selector.
func Zip3[A, B, C, R any](a Source[A], b Source[B], c Source[C], selector func(A, B, C) R) Observable[R] {
	return zip(3, tripleAt(a, b, c), func(v []any) R {
		return selector(cast[A](v[0]), cast[B](v[1]), cast[C](v[2]))
	})
}

// Amb mirrors whichever source delivers an event first. The other sources
// are disposed as soon as the winner is known. Without sources it never
// emits.
func Amb[T any](sources ...Source[T]) Observable[T] {
	return Create(func(o Observer[T]) Disposable {
		group := NewCompositeDisposable()
		holders := make([]*SingleAssignmentDisposable, len(sources))
		winner := -1

		for i, src := range sources {
			if winner >= 0 {
				break
			}
			holders[i] = new(SingleAssignmentDisposable)
			group.Add(holders[i])
			holders[i].Set(observe(src, func(e Event[T]) {
				if winner == -1 {
					winner = i
					for j, h := range holders {
						if j != i && h != nil {
							h.Dispose()
						}
					}
				}
				if winner != i {
					return
				}
				o(e)
			}))
		}
		return group
	})
}

// Amb mirrors o or other, whichever delivers an event first.
func (o Observable[T]) Amb(other Source[T]) Observable[T] {
	return Amb[T](o, other)
}

// WithLatestFromFunc emits fn(trigger value, latest other value) for every
// value of trigger. Nothing is emitted until other produced a value, and
// values of other never trigger an emission themselves. The sequence
// completes with trigger.
func WithLatestFromFunc[T, U, R any](trigger Source[T], other Source[U], fn func(T, U) R) Observable[R] {
	return Create(func(o Observer[R]) Disposable {
		group := NewCompositeDisposable()
		var (
			latest  U
			has     bool
			stopped bool
		)
		finish := func(e Event[R]) {
			if stopped {
				return
			}
			stopped = true
			o(e)
			group.Dispose()
		}

		otherSub := new(SingleAssignmentDisposable)
		group.Add(otherSub)
		otherSub.Set(observe(other, func(e Event[U]) {
			if stopped {
				return
			}
			switch e.Kind {
			case KindNext:
				latest, has = e.Value, true
			case KindError:
				finish(Error[R](e.Err))
			}
		}))

		triggerSub := new(SingleAssignmentDisposable)
		group.Add(triggerSub)
		triggerSub.Set(observe(trigger, func(e Event[T]) {
			if stopped {
				return
			}
			if e.Kind != KindNext {
				finish(stop[R](e))
				return
			}
			if has {
				o(Next(fn(e.Value, latest)))
			}
		}))
		return group
	})
}

// WithLatestFrom emits the latest value of other for every value of trigger.
func WithLatestFrom[T, U any](trigger Source[T], other Source[U]) Observable[U] {
	return WithLatestFromFunc(trigger, other, func(_ T, u U) U { return u })
}

// Sample emits the latest value of src whenever trigger emits, provided src
// produced a new value since the previous sample. When trigger completes the
// pending value, if any, is emitted before completing. A terminal event of
// src ends the sequence at once and drops the pending value.
func Sample[T, U any](src Source[T], trigger Source[U]) Observable[T] {
	return Create(func(o Observer[T]) Disposable {
		group := NewCompositeDisposable()
		var (
			latest  T
			fresh   bool
			stopped bool
		)
		finish := func(e Event[T]) {
			if stopped {
				return
			}
			stopped = true
			o(e)
			group.Dispose()
		}
		flush := func() {
			if fresh {
				fresh = false
				o(Next(latest))
			}
		}

		srcSub := new(SingleAssignmentDisposable)
		group.Add(srcSub)
		srcSub.Set(observe(src, func(e Event[T]) {
			if stopped {
				return
			}
			if e.Kind != KindNext {
				finish(e)
				return
			}
			latest, fresh = e.Value, true
		}))

		triggerSub := new(SingleAssignmentDisposable)
		group.Add(triggerSub)
		triggerSub.Set(observe(trigger, func(e Event[U]) {
			if stopped {
				return
			}
			switch e.Kind {
			case KindNext:
				flush()
			case KindError:
				finish(Error[T](e.Err))
			case KindCompleted:
				flush()
				finish(Completed[T]())
			}
		}))
		return group
	})
}
