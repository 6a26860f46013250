package rx

// Filter emits only the values satisfying pred.
func Filter[T any](src Source[T], pred func(T) bool) Observable[T] {
	return Create(func(o Observer[T]) Disposable {
		return observe(src, func(e Event[T]) {
			if e.Kind == KindNext && !pred(e.Value) {
				return
			}
			o(e)
		})
	})
}

func (o Observable[T]) Filter(pred func(T) bool) Observable[T] {
	return Filter[T](o, pred)
}

// Take emits the first n values and completes. n <= 0 completes at once.
func Take[T any](src Source[T], n int) Observable[T] {
	return Create(func(o Observer[T]) Disposable {
		if n <= 0 {
			o(Completed[T]())
			return nil
		}
		remaining := n
		return observe(src, func(e Event[T]) {
			if e.Kind != KindNext {
				o(e)
				return
			}
			if remaining <= 0 {
				return
			}
			remaining--
			o(e)
			if remaining == 0 {
				o(Completed[T]())
			}
		})
	})
}

func (o Observable[T]) Take(n int) Observable[T] {
	return Take[T](o, n)
}

// Skip drops the first n values.
func Skip[T any](src Source[T], n int) Observable[T] {
	return Create(func(o Observer[T]) Disposable {
		skipped := 0
		return observe(src, func(e Event[T]) {
			if e.Kind == KindNext && skipped < n {
				skipped++
				return
			}
			o(e)
		})
	})
}

func (o Observable[T]) Skip(n int) Observable[T] {
	return Skip[T](o, n)
}

// IgnoreElements drops every value and forwards only the terminal event.
func IgnoreElements[T any](src Source[T]) Observable[T] {
	return Filter(src, func(T) bool { return false })
}

func (o Observable[T]) IgnoreElements() Observable[T] {
	return IgnoreElements[T](o)
}

// DistinctUntilChanged drops values equal to the previous emitted value.
func DistinctUntilChanged[T comparable](src Source[T]) Observable[T] {
	return DistinctUntilChangedFunc(src, func(a, b T) bool { return a == b })
}

// DistinctUntilChangedFunc is DistinctUntilChanged with a custom equality.
func DistinctUntilChangedFunc[T any](src Source[T], equal func(a, b T) bool) Observable[T] {
	return Create(func(o Observer[T]) Disposable {
		var last T
		seen := false
		return observe(src, func(e Event[T]) {
			if e.Kind == KindNext {
				if seen && equal(last, e.Value) {
					return
				}
				last, seen = e.Value, true
			}
			o(e)
		})
	})
}
