package rx_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rxkit/pkg/rx"
	"github.com/dmitrymomot/rxkit/pkg/rx/rxtest"
)

type student struct {
	score *rx.BehaviorSubject[int]
}

func TestFlatMap(t *testing.T) {
	t.Run("merges every inner source", func(t *testing.T) {
		ryan := student{score: rx.NewBehaviorSubject(80)}
		charlotte := student{score: rx.NewBehaviorSubject(90)}
		students := rx.NewPublishSubject[student]()

		rec := rxtest.NewRecorder[int]()
		rec.Subscribe(rx.FlatMap[student](students, func(s student) rx.Source[int] { return s.score }))

		students.OnNext(ryan)
		ryan.score.OnNext(85)
		students.OnNext(charlotte)
		ryan.score.OnNext(95)
		charlotte.score.OnNext(100)

		assert.Equal(t, []int{80, 85, 90, 95, 100}, rec.Values())
	})

	t.Run("completes after outer and all inners complete", func(t *testing.T) {
		outer := rx.NewPublishSubject[int]()
		inner := rx.NewPublishSubject[int]()

		rec := rxtest.NewRecorder[int]()
		rec.Subscribe(rx.FlatMap[int](outer, func(int) rx.Source[int] { return inner }))

		outer.OnNext(1)
		outer.OnCompleted()
		assert.False(t, rec.Terminated())

		inner.OnNext(7)
		inner.OnCompleted()
		assert.Equal(t, []int{7}, rec.Values())
		assert.True(t, rec.Completed())
	})

	t.Run("inner error disposes everything", func(t *testing.T) {
		boom := errors.New("boom")
		outer := rx.NewPublishSubject[int]()
		first := rx.NewPublishSubject[int]()
		second := rx.NewPublishSubject[int]()
		inners := []*rx.PublishSubject[int]{first, second}

		rec := rxtest.NewRecorder[int]()
		rec.Subscribe(rx.FlatMap[int](outer, func(i int) rx.Source[int] { return inners[i] }))
		outer.OnNext(0)
		outer.OnNext(1)

		first.OnError(boom)
		second.OnNext(1)

		assert.ErrorIs(t, rec.Err(), boom)
		assert.Empty(t, rec.Values())
		assert.False(t, outer.HasObservers())
		assert.False(t, second.HasObservers())
	})

	t.Run("synchronous inners", func(t *testing.T) {
		got := collect(t, rx.FlatMap(rx.Of(1, 2), func(v int) rx.Source[int] { return rx.Of(v, v*10) }))
		assert.Equal(t, []int{1, 10, 2, 20}, got)
	})
}

func TestMerge(t *testing.T) {
	left := rx.NewPublishSubject[string]()
	right := rx.NewPublishSubject[string]()

	rec := rxtest.NewRecorder[string]()
	rec.Subscribe(rx.Merge[string](left, right))

	left.OnNext("l1")
	right.OnNext("r1")
	left.OnNext("l2")
	left.OnCompleted()
	right.OnNext("r2")
	assert.False(t, rec.Terminated())
	right.OnCompleted()

	assert.Equal(t, []string{"l1", "r1", "l2", "r2"}, rec.Values())
	assert.True(t, rec.Completed())

	t.Run("merge all", func(t *testing.T) {
		got := collect(t, rx.MergeAll(rx.Of(rx.Of(1, 2), rx.Of(3))))
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("no sources completes", func(t *testing.T) {
		assert.Empty(t, collect(t, rx.Merge[int]()))
	})

	t.Run("first error disposes the other sources", func(t *testing.T) {
		boom := errors.New("boom")
		left := rx.NewPublishSubject[int]()
		right := rx.NewPublishSubject[int]()

		rec := rxtest.NewRecorder[int]()
		rec.Subscribe(rx.Merge[int](left, right))

		left.OnNext(1)
		right.OnError(boom)
		left.OnNext(2)

		assert.Equal(t, []rx.Event[int]{rx.Next(1), rx.Error[int](boom)}, rec.Events())
		assert.False(t, left.HasObservers())
	})
}

func TestFlatMapLatest(t *testing.T) {
	ryan := student{score: rx.NewBehaviorSubject(80)}
	charlotte := student{score: rx.NewBehaviorSubject(90)}
	students := rx.NewPublishSubject[student]()

	rec := rxtest.NewRecorder[int]()
	rec.Subscribe(rx.FlatMapLatest[student](students, func(s student) rx.Source[int] { return s.score }))

	students.OnNext(ryan)
	ryan.score.OnNext(85)
	students.OnNext(charlotte)
	ryan.score.OnNext(95)
	charlotte.score.OnNext(100)

	assert.Equal(t, []int{80, 85, 90, 100}, rec.Values())
	assert.False(t, ryan.score.HasObservers())

	t.Run("completes when outer and current inner complete", func(t *testing.T) {
		students.OnCompleted()
		assert.False(t, rec.Terminated())
		charlotte.score.OnCompleted()
		assert.True(t, rec.Completed())
	})
}

func TestSwitchLatest(t *testing.T) {
	one := rx.NewPublishSubject[string]()
	two := rx.NewPublishSubject[string]()
	three := rx.NewPublishSubject[string]()
	sources := rx.NewPublishSubject[rx.Observable[string]]()

	rec := rxtest.NewRecorder[string]()
	rec.Subscribe(rx.SwitchLatest[string](sources))

	sources.OnNext(one.AsObservable())
	one.OnNext("Some text from sequence one")
	two.OnNext("Some text from sequence two")

	sources.OnNext(two.AsObservable())
	two.OnNext("More text from sequence two")
	one.OnNext("and also from sequence one")

	sources.OnNext(three.AsObservable())
	two.OnNext("Why don't you see me?")
	one.OnNext("I'm alone, help")
	three.OnNext("Hey it's three. I win.")

	sources.OnNext(one.AsObservable())
	one.OnNext("Nope. It's me, one!")

	assert.Equal(t, []string{
		"Some text from sequence one",
		"More text from sequence two",
		"Hey it's three. I win.",
		"Nope. It's me, one!",
	}, rec.Values())
	assert.False(t, two.HasObservers())
	assert.False(t, three.HasObservers())
}

func TestConcat(t *testing.T) {
	t.Run("synchronous sources", func(t *testing.T) {
		got := collect(t, rx.Concat(rx.Of(1, 2), rx.Empty[int](), rx.Of(3)))
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("subscribes to the next source only after completion", func(t *testing.T) {
		first := rx.NewPublishSubject[int]()
		second := rx.NewPublishSubject[int]()

		rec := rxtest.NewRecorder[int]()
		rec.Subscribe(rx.Concat[int](first, second))

		second.OnNext(0)
		first.OnNext(1)
		assert.False(t, second.HasObservers())

		first.OnCompleted()
		assert.True(t, second.HasObservers())
		second.OnNext(2)
		second.OnCompleted()

		assert.Equal(t, []int{1, 2}, rec.Values())
		assert.True(t, rec.Completed())
	})

	t.Run("error stops the chain", func(t *testing.T) {
		boom := errors.New("boom")
		rec := rxtest.NewRecorder[int]()
		rec.Subscribe(rx.Concat(rx.Of(1), rx.Throw[int](boom), rx.Of(2)))
		assert.Equal(t, []rx.Event[int]{rx.Next(1), rx.Error[int](boom)}, rec.Events())
	})

	t.Run("concat map keeps source order", func(t *testing.T) {
		inners := []*rx.PublishSubject[string]{rx.NewPublishSubject[string](), rx.NewPublishSubject[string]()}
		outer := rx.NewPublishSubject[int]()

		rec := rxtest.NewRecorder[string]()
		rec.Subscribe(rx.ConcatMap[int](outer, func(i int) rx.Source[string] { return inners[i] }))

		outer.OnNext(0)
		outer.OnNext(1)
		outer.OnCompleted()

		inners[1].OnNext("skipped")
		inners[0].OnNext("a")
		inners[0].OnCompleted()
		inners[1].OnNext("b")
		assert.False(t, rec.Terminated())
		inners[1].OnCompleted()

		assert.Equal(t, []string{"a", "b"}, rec.Values())
		assert.True(t, rec.Completed())
	})

	t.Run("concat all", func(t *testing.T) {
		got := collect(t, rx.ConcatAll(rx.Of(rx.Of("x"), rx.Of("y", "z"))))
		assert.Equal(t, []string{"x", "y", "z"}, got)
	})
}
