package rx_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rxkit/pkg/rx"
	"github.com/dmitrymomot/rxkit/pkg/rx/rxtest"
)

func TestMap(t *testing.T) {
	got := collect(t, rx.Map(rx.Of(1, 2, 3), func(v int) string { return strconv.Itoa(v * 10) }))
	assert.Equal(t, []string{"10", "20", "30"}, got)

	t.Run("forwards errors", func(t *testing.T) {
		boom := errors.New("boom")
		rec := rxtest.NewRecorder[string]()
		rec.Subscribe(rx.Map(rx.Throw[int](boom), strconv.Itoa))
		assert.Equal(t, []rx.Event[string]{rx.Error[string](boom)}, rec.Events())
	})

	t.Run("nil source", func(t *testing.T) {
		rec := rxtest.NewRecorder[int]()
		rec.Subscribe(rx.Map[int, int](nil, func(v int) int { return v }))
		assert.ErrorIs(t, rec.Err(), rx.ErrNilSource)
	})
}

func TestCompactMap(t *testing.T) {
	src := rx.Of("1", "x", "3")
	got := collect(t, rx.CompactMap(src, func(s string) (int, bool) {
		v, err := strconv.Atoi(s)
		return v, err == nil
	}))
	assert.Equal(t, []int{1, 3}, got)
}

func TestScan(t *testing.T) {
	src := rx.Scan(rx.Of(1, 2, 3, 4), 0, func(acc, v int) int { return acc + v })
	assert.Equal(t, []int{1, 3, 6, 10}, collect(t, src))
	assert.Equal(t, []int{1, 3, 6, 10}, collect(t, src), "each subscription restarts from the seed")
}

func TestReduce(t *testing.T) {
	sum := func(acc, v int) int { return acc + v }

	assert.Equal(t, []int{10}, collect(t, rx.Reduce(rx.Of(1, 2, 3, 4), 0, sum)))
	assert.Equal(t, []int{7}, collect(t, rx.Reduce(rx.Empty[int](), 7, sum)))

	boom := errors.New("boom")
	rec := rxtest.NewRecorder[int]()
	rec.Subscribe(rx.Reduce(rx.Throw[int](boom), 0, sum))
	assert.Equal(t, []rx.Event[int]{rx.Error[int](boom)}, rec.Events())
}

func TestEnumerated(t *testing.T) {
	got := collect(t, rx.Enumerated(rx.Of("a", "b")))
	assert.Equal(t, []rx.Indexed[string]{{Index: 0, Value: "a"}, {Index: 1, Value: "b"}}, got)
}

func TestToArray(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2, 3}}, collect(t, rx.ToArray(rx.Of(1, 2, 3))))
	assert.Equal(t, [][]int{{}}, collect(t, rx.ToArray(rx.Empty[int]())))
}

func TestMaterialize(t *testing.T) {
	boom := errors.New("boom")
	src := rx.Concat(rx.Of(1), rx.Throw[int](boom))

	events := collect(t, rx.Materialize(src))
	assert.Equal(t, []rx.Event[int]{rx.Next(1), rx.Error[int](boom)}, events)

	t.Run("round trip", func(t *testing.T) {
		rec := rxtest.NewRecorder[int]()
		rec.Subscribe(rx.Dematerialize(rx.Materialize(src)))
		assert.Equal(t, []rx.Event[int]{rx.Next(1), rx.Error[int](boom)}, rec.Events())
	})

	t.Run("dematerialize stops at the first terminal event", func(t *testing.T) {
		events := rx.Of(rx.Next(1), rx.Completed[int](), rx.Next(2))
		assert.Equal(t, []int{1}, collect(t, rx.Dematerialize(events)))
	})
}

func TestStartWith(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, collect(t, rx.Of(3).StartWith(1, 2)))
	assert.Equal(t, []int{0, 9}, collect(t, rx.StartWith(rx.Of(9), 0)))
}
