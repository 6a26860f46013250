package rx

// Map applies fn to every value of src.
func Map[T, U any](src Source[T], fn func(T) U) Observable[U] {
	return Create(func(o Observer[U]) Disposable {
		return observe(src, func(e Event[T]) {
			if e.Kind != KindNext {
				o(stop[U](e))
				return
			}
			o(Next(fn(e.Value)))
		})
	})
}

// CompactMap applies fn to every value and emits only the results reported
// as present.
func CompactMap[T, U any](src Source[T], fn func(T) (U, bool)) Observable[U] {
	return Create(func(o Observer[U]) Disposable {
		return observe(src, func(e Event[T]) {
			if e.Kind != KindNext {
				o(stop[U](e))
				return
			}
			if v, ok := fn(e.Value); ok {
				o(Next(v))
			}
		})
	})
}

// Scan emits the running accumulation of src, starting from seed.
// Every subscription starts again from seed.
func Scan[T, A any](src Source[T], seed A, fn func(A, T) A) Observable[A] {
	return Create(func(o Observer[A]) Disposable {
		acc := seed
		return observe(src, func(e Event[T]) {
			if e.Kind != KindNext {
				o(stop[A](e))
				return
			}
			acc = fn(acc, e.Value)
			o(Next(acc))
		})
	})
}

// Reduce emits the final accumulation of src once src completes.
// An empty source yields seed.
func Reduce[T, A any](src Source[T], seed A, fn func(A, T) A) Observable[A] {
	return Create(func(o Observer[A]) Disposable {
		acc := seed
		return observe(src, func(e Event[T]) {
			switch e.Kind {
			case KindNext:
				acc = fn(acc, e.Value)
			case KindError:
				o(Error[A](e.Err))
			case KindCompleted:
				o(Next(acc))
				o(Completed[A]())
			}
		})
	})
}

// Indexed pairs a value with its zero-based position in the sequence.
type Indexed[T any] struct {
	Index int
	Value T
}

// Enumerated pairs every value with its index.
func Enumerated[T any](src Source[T]) Observable[Indexed[T]] {
	return Create(func(o Observer[Indexed[T]]) Disposable {
		index := 0
		return observe(src, func(e Event[T]) {
			if e.Kind != KindNext {
				o(stop[Indexed[T]](e))
				return
			}
			o(Next(Indexed[T]{Index: index, Value: e.Value}))
			index++
		})
	})
}

// ToArray collects every value and emits them as one slice on completion.
func ToArray[T any](src Source[T]) Observable[[]T] {
	return Create(func(o Observer[[]T]) Disposable {
		values := make([]T, 0)
		return observe(src, func(e Event[T]) {
			switch e.Kind {
			case KindNext:
				values = append(values, e.Value)
			case KindError:
				o(Error[[]T](e.Err))
			case KindCompleted:
				o(Next(values))
				o(Completed[[]T]())
			}
		})
	})
}

// Materialize emits every event of src, terminal ones included, as a value
// and completes after the terminal one.
func Materialize[T any](src Source[T]) Observable[Event[T]] {
	return Create(func(o Observer[Event[T]]) Disposable {
		return observe(src, func(e Event[T]) {
			o(Next(e))
			if e.IsTerminal() {
				o(Completed[Event[T]]())
			}
		})
	})
}

// Dematerialize turns event values back into events. The sequence ends with
// the first terminal event it unwraps.
func Dematerialize[T any](src Source[Event[T]]) Observable[T] {
	return Create(func(o Observer[T]) Disposable {
		return observe(src, func(e Event[Event[T]]) {
			if e.Kind != KindNext {
				o(stop[T](e))
				return
			}
			o(e.Value)
		})
	})
}

// StartWith emits values synchronously on subscription, before src.
func StartWith[T any](src Source[T], values ...T) Observable[T] {
	return Create(func(o Observer[T]) Disposable {
		for _, v := range values {
			o(Next(v))
		}
		return observe(src, o)
	})
}

// StartWith emits values before the events of o.
func (o Observable[T]) StartWith(values ...T) Observable[T] {
	return StartWith[T](o, values...)
}
