package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_SameSeedSameSequence(t *testing.T) {
	a := NewStream(42)
	b := NewStream(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Value(), b.Value())
		require.Equal(t, a.Range(-2, 2), b.Range(-2, 2))
	}
}

func TestStream_RangeBounds(t *testing.T) {
	s := NewStream(7)
	for i := 0; i < 1000; i++ {
		v := s.Range(2, 10)
		require.GreaterOrEqual(t, v, 2)
		require.Less(t, v, 10)

		f := s.Value()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

func TestStream_EmptyRangeReturnsMin(t *testing.T) {
	s := NewStream(1)
	assert.Equal(t, 5, s.Range(5, 5))
	assert.Equal(t, 5, s.Range(5, 3))
}

func TestRecorder_LogsDrawsInOrder(t *testing.T) {
	r := NewRecorder(NewStream(3))
	v := r.Value()
	n := r.Range(0, 4)
	draws := r.Draws()
	require.Len(t, draws, 2)
	assert.Equal(t, ValueDraw(v), draws[0])
	assert.Equal(t, RangeDraw(0, 4, n), draws[1])
}

func TestReplay_ReturnsScriptedDraws(t *testing.T) {
	r := NewReplay(ValueDraw(0.25), RangeDraw(2, 10, 7))
	assert.Equal(t, 0.25, r.Value())
	assert.Equal(t, 7, r.Range(2, 10))
	assert.Equal(t, 0, r.Remaining())
}

func TestReplay_PanicsOnMismatch(t *testing.T) {
	assert.Panics(t, func() { NewReplay(ValueDraw(0.5)).Range(0, 1) })
	assert.Panics(t, func() { NewReplay(RangeDraw(2, 10, 3)).Range(-2, 2) })
	assert.Panics(t, func() { NewReplay().Value() })
}

func TestRecorder_ReplayRoundTrip(t *testing.T) {
	rec := NewRecorder(NewStream(11))
	var want []int
	for i := 0; i < 20; i++ {
		want = append(want, rec.Range(-2, 2))
	}

	replay := NewReplay(rec.Draws()...)
	for _, w := range want {
		require.Equal(t, w, replay.Range(-2, 2))
	}
}

func TestFixed_ClampsRange(t *testing.T) {
	f := Fixed{Float: 0.3, Int: 50}
	assert.Equal(t, 0.3, f.Value())
	assert.Equal(t, 9, f.Range(2, 10))
	assert.Equal(t, -2, Fixed{Int: -9}.Range(-2, 2))
	assert.Equal(t, 4, f.Range(4, 4))
}
