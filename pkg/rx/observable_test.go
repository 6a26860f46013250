package rx_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rxkit/pkg/rx"
	"github.com/dmitrymomot/rxkit/pkg/rx/rxtest"
)

func TestCreate(t *testing.T) {
	t.Run("nothing follows a terminal event", func(t *testing.T) {
		torn := 0
		src := rx.Create(func(o rx.Observer[int]) rx.Disposable {
			o(rx.Next(1))
			o(rx.Completed[int]())
			o(rx.Next(2))
			o(rx.Error[int](errors.New("late")))
			return rx.NewDisposable(func() { torn++ })
		})

		rec := rxtest.NewRecorder[int]()
		rec.Subscribe(src)

		assert.Equal(t, []rx.Event[int]{rx.Next(1), rx.Completed[int]()}, rec.Events())
		assert.Equal(t, 1, torn, "teardown runs once the sequence terminated")
	})

	t.Run("dispose stops delivery and runs teardown", func(t *testing.T) {
		var push rx.Observer[int]
		torn := 0
		src := rx.Create(func(o rx.Observer[int]) rx.Disposable {
			push = o
			return rx.NewDisposable(func() { torn++ })
		})

		rec := rxtest.NewRecorder[int]()
		d := rec.Subscribe(src)
		push(rx.Next(1))
		d.Dispose()
		d.Dispose()
		push(rx.Next(2))
		push(rx.Completed[int]())

		assert.Equal(t, []int{1}, rec.Values())
		assert.False(t, rec.Terminated())
		assert.Equal(t, 1, torn)
	})

	t.Run("producer runs per subscription", func(t *testing.T) {
		runs := 0
		src := rx.Create(func(o rx.Observer[int]) rx.Disposable {
			runs++
			o(rx.Next(runs))
			return nil
		})
		first, second := rxtest.NewRecorder[int](), rxtest.NewRecorder[int]()
		first.Subscribe(src)
		second.Subscribe(src)

		assert.Equal(t, []int{1}, first.Values())
		assert.Equal(t, []int{2}, second.Values())
	})

	t.Run("zero observable fails with ErrNilSource", func(t *testing.T) {
		var src rx.Observable[int]
		rec := rxtest.NewRecorder[int]()
		rec.Subscribe(src)
		assert.ErrorIs(t, rec.Err(), rx.ErrNilSource)
	})

	t.Run("nil observer is tolerated", func(t *testing.T) {
		assert.NotPanics(t, func() {
			rx.Of(1, 2).Observe(nil).Dispose()
		})
	})
}

func TestSubscribe(t *testing.T) {
	t.Run("delivers to callbacks", func(t *testing.T) {
		var (
			values    []string
			completed bool
		)
		rx.Of("a", "b", "c").Subscribe(
			func(v string) { values = append(values, v) },
			func(error) { t.Fatal("unexpected error") },
			func() { completed = true },
		)
		assert.Equal(t, []string{"a", "b", "c"}, values)
		assert.True(t, completed)
	})

	t.Run("nil error callback drops the error", func(t *testing.T) {
		assert.NotPanics(t, func() {
			rx.Throw[int](errors.New("boom")).Subscribe(nil, nil, nil)
		})
	})

	t.Run("subscribe event", func(t *testing.T) {
		var events []rx.Event[int]
		rx.Just(5).SubscribeEvent(func(e rx.Event[int]) { events = append(events, e) })
		assert.Equal(t, []rx.Event[int]{rx.Next(5), rx.Completed[int]()}, events)
	})
}

func TestCreationOperators(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		src    rx.Observable[int]
		events []rx.Event[int]
	}{
		{"of", rx.Of(1, 2, 3), []rx.Event[int]{rx.Next(1), rx.Next(2), rx.Next(3), rx.Completed[int]()}},
		{"of without values", rx.Of[int](), []rx.Event[int]{rx.Completed[int]()}},
		{"just", rx.Just(4), []rx.Event[int]{rx.Next(4), rx.Completed[int]()}},
		{"from", rx.From([]int{7, 8}), []rx.Event[int]{rx.Next(7), rx.Next(8), rx.Completed[int]()}},
		{"empty", rx.Empty[int](), []rx.Event[int]{rx.Completed[int]()}},
		{"throw", rx.Throw[int](boom), []rx.Event[int]{rx.Error[int](boom)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := rxtest.NewRecorder[int]()
			rec.Subscribe(tt.src)
			assert.Equal(t, tt.events, rec.Events())
		})
	}

	t.Run("never", func(t *testing.T) {
		rec := rxtest.NewRecorder[int]()
		d := rec.Subscribe(rx.Never[int]())
		assert.Empty(t, rec.Events())
		d.Dispose()
	})
}

func TestDefer(t *testing.T) {
	calls := 0
	src := rx.Defer(func() rx.Source[int] {
		calls++
		return rx.Of(calls)
	})
	assert.Equal(t, 0, calls)

	first, second := rxtest.NewRecorder[int](), rxtest.NewRecorder[int]()
	first.Subscribe(src)
	second.Subscribe(src)

	assert.Equal(t, []int{1}, first.Values())
	assert.Equal(t, []int{2}, second.Values())

	t.Run("nil source", func(t *testing.T) {
		rec := rxtest.NewRecorder[int]()
		rec.Subscribe(rx.Defer(func() rx.Source[int] { return nil }))
		require.Error(t, rec.Err())
		assert.ErrorIs(t, rec.Err(), rx.ErrNilSource)
	})
}

func TestWrap(t *testing.T) {
	subject := rx.NewPublishSubject[int]()
	rec := rxtest.NewRecorder[int]()
	rec.Subscribe(rx.Wrap[int](subject).Filter(func(v int) bool { return v > 1 }))

	subject.OnNext(1)
	subject.OnNext(2)
	subject.OnCompleted()

	assert.Equal(t, []int{2}, rec.Values())
	assert.True(t, rec.Completed())

	of := rx.Of(1)
	assert.Equal(t, []int{1}, collect(t, rx.Wrap[int](of)))
}

// collect subscribes to src and returns its values, requiring completion.
func collect[T any](t *testing.T, src rx.Source[T]) []T {
	t.Helper()
	rec := rxtest.NewRecorder[T]()
	rec.Subscribe(src)
	require.NoError(t, rec.Err())
	require.True(t, rec.Completed(), "sequence did not complete")
	return rec.Values()
}
