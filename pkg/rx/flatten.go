package rx

import "github.com/eapache/queue"

// FlatMap subscribes to the source returned by fn for every value of src and
// merges the values of all those inner sources. It completes once src and
// every inner source completed; the first error from any of them ends the
// sequence and disposes all remaining subscriptions.
func FlatMap[T, U any](src Source[T], fn func(T) Source[U]) Observable[U] {
	return Create(func(o Observer[U]) Disposable {
		group := NewCompositeDisposable()
		var (
			active    int
			outerDone bool
			stopped   bool
		)
		finish := func(e Event[U]) {
			if stopped {
				return
			}
			stopped = true
			o(e)
			group.Dispose()
		}

		outer := new(SingleAssignmentDisposable)
		group.Add(outer)
		outer.Set(observe(src, func(e Event[T]) {
			if stopped {
				return
			}
			switch e.Kind {
			case KindNext:
				active++
				holder := new(SingleAssignmentDisposable)
				key := group.Add(holder)
				holder.Set(observe(fn(e.Value), func(ie Event[U]) {
					if stopped {
						return
					}
					switch ie.Kind {
					case KindNext:
						o(ie)
					case KindError:
						finish(ie)
					case KindCompleted:
						group.Remove(key)
						active--
						if outerDone && active == 0 {
							finish(ie)
						}
					}
				}))
			case KindError:
				finish(stop[U](e))
			case KindCompleted:
				outerDone = true
				if active == 0 {
					finish(Completed[U]())
				}
			}
		}))
		return group
	})
}

// MergeAll merges the values of every observable emitted by src.
func MergeAll[T any](src Source[Observable[T]]) Observable[T] {
	return FlatMap(src, func(inner Observable[T]) Source[T] { return inner })
}

// Merge subscribes to every source at once and forwards their values as they
// arrive. It completes when all sources completed and fails with the first
// error, disposing the other sources.
func Merge[T any](sources ...Source[T]) Observable[T] {
	return FlatMap(From(sources), func(s Source[T]) Source[T] { return s })
}

// FlatMapLatest is FlatMap keeping only the inner source created from the
// most recent value; the previous inner subscription is disposed before the
// next one starts.
func FlatMapLatest[T, U any](src Source[T], fn func(T) Source[U]) Observable[U] {
	return Create(func(o Observer[U]) Disposable {
		outer := new(SingleAssignmentDisposable)
		current := new(SerialDisposable)
		group := NewCompositeDisposable(outer, current)
		var (
			generation uint64
			hasInner   bool
			outerDone  bool
			stopped    bool
		)
		finish := func(e Event[U]) {
			if stopped {
				return
			}
			stopped = true
			o(e)
			group.Dispose()
		}

		outer.Set(observe(src, func(e Event[T]) {
			if stopped {
				return
			}
			switch e.Kind {
			case KindNext:
				generation++
				id := generation
				hasInner = true
				holder := new(SingleAssignmentDisposable)
				current.Set(holder)
				holder.Set(observe(fn(e.Value), func(ie Event[U]) {
					if stopped || id != generation {
						return
					}
					switch ie.Kind {
					case KindNext:
						o(ie)
					case KindError:
						finish(ie)
					case KindCompleted:
						hasInner = false
						if outerDone {
							finish(ie)
						}
					}
				}))
			case KindError:
				finish(stop[U](e))
			case KindCompleted:
				outerDone = true
				if !hasInner {
					finish(Completed[U]())
				}
			}
		}))
		return group
	})
}

// SwitchLatest forwards the values of the most recent observable emitted by
// src only. Switching disposes the previous one.
func SwitchLatest[T any](src Source[Observable[T]]) Observable[T] {
	return FlatMapLatest(src, func(inner Observable[T]) Source[T] { return inner })
}

// ConcatMap subscribes to the inner sources one at a time, in the order src
// produced them. The next inner source starts only after the current one
// completed.
func ConcatMap[T, U any](src Source[T], fn func(T) Source[U]) Observable[U] {
	return Create(func(o Observer[U]) Disposable {
		outer := new(SingleAssignmentDisposable)
		current := new(SerialDisposable)
		group := NewCompositeDisposable(outer, current)
		pending := queue.New()
		var (
			active    bool
			outerDone bool
			stopped   bool
		)
		finish := func(e Event[U]) {
			if stopped {
				return
			}
			stopped = true
			o(e)
			group.Dispose()
		}

		var run func(inner Source[U])
		run = func(inner Source[U]) {
			active = true
			holder := new(SingleAssignmentDisposable)
			current.Set(holder)
			holder.Set(observe(inner, func(ie Event[U]) {
				if stopped {
					return
				}
				switch ie.Kind {
				case KindNext:
					o(ie)
				case KindError:
					finish(ie)
				case KindCompleted:
					active = false
					if pending.Length() > 0 {
						next, _ := pending.Remove().(Source[U])
						run(next)
						return
					}
					if outerDone {
						finish(ie)
					}
				}
			}))
		}

		outer.Set(observe(src, func(e Event[T]) {
			if stopped {
				return
			}
			switch e.Kind {
			case KindNext:
				inner := fn(e.Value)
				if active {
					pending.Add(inner)
					return
				}
				run(inner)
			case KindError:
				finish(stop[U](e))
			case KindCompleted:
				outerDone = true
				if !active && pending.Length() == 0 {
					finish(Completed[U]())
				}
			}
		}))
		return group
	})
}

// ConcatAll subscribes to the observables emitted by src one after another.
func ConcatAll[T any](src Source[Observable[T]]) Observable[T] {
	return ConcatMap(src, func(inner Observable[T]) Source[T] { return inner })
}

// Concat emits all values of each source in turn, subscribing to a source
// only after the previous one completed.
func Concat[T any](sources ...Source[T]) Observable[T] {
	return ConcatMap(From(sources), func(s Source[T]) Source[T] { return s })
}
