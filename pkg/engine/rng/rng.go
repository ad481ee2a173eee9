// Package rng provides the ordered pseudorandom stream that drives one generation run.
//
// A Stream is owned by exactly one run. Draw order matters: every consumer
// takes its values in a fixed sequence so that equal seeds produce equal levels.
package rng

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic"
)

// Source is an ordered sequence of pseudorandom draws.
type Source interface {
	// Value returns a uniform real in [0, 1).
	Value() float64
	// Range returns a uniform integer in [min, max). It returns min when max <= min.
	Range(min, max int) int
}

// Stream is a Source backed by a private math/rand generator.
type Stream struct {
	rng  *rand.Rand
	seed int64
}

// NewStream creates a stream seeded with seed
func NewStream(seed int64) *Stream {
	return &Stream{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the stream was created with
func (s *Stream) Seed() int64 {
	return s.seed
}

// Value returns a uniform real in [0, 1)
func (s *Stream) Value() float64 {
	return s.rng.Float64()
}

// Range returns a uniform integer in [min, max)
func (s *Stream) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min)
}

// DrawKind tells which Source method produced a draw
type DrawKind int

const (
	DrawValue DrawKind = iota
	DrawRange
)

// Draw is one recorded value taken from a Source.
type Draw struct {
	Kind  DrawKind
	Min   int // Range bounds, zero for Value draws
	Max   int
	Float float64 // result of a Value draw
	Int   int     // result of a Range draw
}

// String formats the draw for debug dumps
func (d Draw) String() string {
	if d.Kind == DrawValue {
		return fmt.Sprintf("value %.6f", d.Float)
	}
	return fmt.Sprintf("range [%d,%d) -> %d", d.Min, d.Max, d.Int)
}

// ValueDraw describes a Value draw that returns v
func ValueDraw(v float64) Draw {
	return Draw{Kind: DrawValue, Float: v}
}

// RangeDraw describes a Range(min, max) draw that returns v
func RangeDraw(min, max, v int) Draw {
	return Draw{Kind: DrawRange, Min: min, Max: max, Int: v}
}

// Recorder wraps a Source and keeps a log of every draw taken from it.
type Recorder struct {
	src   Source
	draws []Draw
}

// NewRecorder wraps src
func NewRecorder(src Source) *Recorder {
	return &Recorder{src: src}
}

// Value draws a real from the wrapped source
func (r *Recorder) Value() float64 {
	v := r.src.Value()
	r.draws = append(r.draws, ValueDraw(v))
	return v
}

// Range draws an integer from the wrapped source
func (r *Recorder) Range(min, max int) int {
	v := r.src.Range(min, max)
	r.draws = append(r.draws, RangeDraw(min, max, v))
	return v
}

// Draws returns the draws taken so far, oldest first
func (r *Recorder) Draws() []Draw {
	return r.draws
}

// Replay is a Source that returns a fixed list of draws in order.
// It panics when the caller asks for a different kind of draw, different
// Range bounds, or more draws than were scripted.
type Replay struct {
	draws []Draw
	next  int
}

// NewReplay creates a replay of draws
func NewReplay(draws ...Draw) *Replay {
	return &Replay{draws: draws}
}

func (r *Replay) pop(kind DrawKind, min, max int) Draw {
	if r.next >= len(r.draws) {
		panic(fmt.Sprintf("replay exhausted after %d draws", len(r.draws)))
	}
	d := r.draws[r.next]
	if d.Kind != kind || (kind == DrawRange && (d.Min != min || d.Max != max)) {
		want := Draw{Kind: kind, Min: min, Max: max}
		panic(fmt.Sprintf("replay draw %d: scripted %v, asked for %v", r.next, d, want))
	}
	r.next++
	return d
}

// Value returns the next scripted Value draw
func (r *Replay) Value() float64 {
	return r.pop(DrawValue, 0, 0).Float
}

// Range returns the next scripted Range draw
func (r *Replay) Range(min, max int) int {
	return r.pop(DrawRange, min, max).Int
}

// Remaining returns how many scripted draws have not been consumed
func (r *Replay) Remaining() int {
	return len(r.draws) - r.next
}

// Fixed is a Source that always returns the same values.
// Range results are clamped into [min, max).
type Fixed struct {
	Float float64
	Int   int
}

// Value returns f.Float
func (f Fixed) Value() float64 {
	return f.Float
}

// Range returns f.Int clamped into [min, max)
func (f Fixed) Range(min, max int) int {
	if max <= min {
		return min
	}
	return generic.Clamp(f.Int, min, max-1)
}
