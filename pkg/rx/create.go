package rx

// Of emits each value in argument order and then completes.
func Of[T any](values ...T) Observable[T] {
	return From(values)
}

// Just emits a single value and completes.
func Just[T any](value T) Observable[T] {
	return From([]T{value})
}

// From emits the elements of values in order and then completes.
// The slice is read at subscription time.
func From[T any](values []T) Observable[T] {
	return Create(func(o Observer[T]) Disposable {
		for _, v := range values {
			o(Next(v))
		}
		o(Completed[T]())
		return nil
	})
}

// Empty completes immediately without emitting values.
func Empty[T any]() Observable[T] {
	return Create(func(o Observer[T]) Disposable {
		o(Completed[T]())
		return nil
	})
}

// Never emits nothing and never terminates.
func Never[T any]() Observable[T] {
	return Create(func(Observer[T]) Disposable {
		return nil
	})
}

// Throw terminates immediately with err.
func Throw[T any](err error) Observable[T] {
	return Create(func(o Observer[T]) Disposable {
		o(Error[T](err))
		return nil
	})
}

// Defer calls factory on every subscription and subscribes to the result.
func Defer[T any](factory func() Source[T]) Observable[T] {
	return Create(func(o Observer[T]) Disposable {
		return observe(factory(), o)
	})
}
