// Package seed turns raw user input into the canonical seed of a generation run.
package seed

import (
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

// Seed is the canonical signed 31-bit value driving one generation run.
type Seed int32

// Int64 widens the seed for use as a math/rand source seed
func (s Seed) Int64() int64 {
	return int64(s)
}

// Origin records which resolution path produced a seed.
type Origin int

const (
	OriginRandom  Origin = iota // no input; drawn from the process random source
	OriginNumeric               // input parsed as an integer
	OriginHashed                // arbitrary text folded by HashText
)

// String returns the string representation of an origin
func (o Origin) String() string {
	switch o {
	case OriginRandom:
		return "random"
	case OriginNumeric:
		return "numeric"
	case OriginHashed:
		return "hashed"
	default:
		return "unknown"
	}
}

// hashBase and hashMultiplier define the rolling text hash.
const (
	hashBase       int32 = 23
	hashMultiplier int32 = 31
)

// HashText folds text into a non-negative 31-bit seed.
// The hash walks UTF-16 code units with wrapping int32 arithmetic and clears the sign bit.
// It is order sensitive and not collision free.
func HashText(text string) Seed {
	acc := hashBase
	for _, unit := range utf16.Encode([]rune(text)) {
		acc = acc*hashMultiplier + int32(unit)
	}
	return Seed(acc & math.MaxInt32)
}

// RandomSource supplies non-deterministic seeds when no input is given.
type RandomSource interface {
	Int31n(n int32) int32
}

// Resolver resolves raw seed input. The zero value draws random seeds from a
// time-seeded source and does not log.
type Resolver struct {
	// Random is used when the input is empty. Nil means a time-seeded math/rand source.
	Random RandomSource
	// Logger receives the resolved seed. Nil disables logging.
	Logger *log.Logger
}

// NewResolver creates a resolver that logs to logger
func NewResolver(logger *log.Logger) *Resolver {
	return &Resolver{Logger: logger}
}

// Resolve returns the seed for raw and the path taken to produce it.
//
// Empty input draws a random seed in [1, MaxInt32]. Input that parses as a
// 32-bit integer (surrounding spaces allowed) is used as-is. Anything else is hashed with HashText.
// Resolve never fails.
func (r *Resolver) Resolve(raw string) (Seed, Origin) {
	s, origin := r.resolve(raw)
	r.logf("resolved %s seed %d from %q", origin, s, raw)
	return s, origin
}

func (r *Resolver) resolve(raw string) (Seed, Origin) {
	if raw == "" {
		return Seed(r.random().Int31n(math.MaxInt32) + 1), OriginRandom
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32); err == nil {
		return Seed(n), OriginNumeric
	}
	return HashText(raw), OriginHashed
}

func (r *Resolver) random() RandomSource {
	if r.Random == nil {
		r.Random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r.Random
}

func (r *Resolver) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}
