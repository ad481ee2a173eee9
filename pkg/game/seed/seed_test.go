package seed

import (
	"bytes"
	"log"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRandom always draws the same value and counts calls.
type fixedRandom struct {
	value int32
	calls int
}

func (f *fixedRandom) Int31n(n int32) int32 {
	f.calls++
	return f.value % n
}

func TestHashText_KnownValues(t *testing.T) {
	cases := map[string]Seed{
		"":            23,
		"a":           810,
		"ab":          25208,
		"hello world": 468041293,
		"level-one":   265258598,
		"🙂":           1795068,
	}
	for text, want := range cases {
		t.Run(text, func(t *testing.T) {
			assert.Equal(t, want, HashText(text))
		})
	}
}

func TestHashText_StableAndNonNegative(t *testing.T) {
	long := bytes.Repeat([]byte("overflow-me "), 500)
	first := HashText(string(long))
	assert.Equal(t, first, HashText(string(long)))
	assert.GreaterOrEqual(t, int32(first), int32(0))
}

func TestHashText_OrderSensitive(t *testing.T) {
	assert.NotEqual(t, HashText("abc"), HashText("acb"))
}

func TestResolve_NumericTakesParsePath(t *testing.T) {
	random := &fixedRandom{value: 99}
	r := &Resolver{Random: random}

	s, origin := r.Resolve("23")
	assert.Equal(t, Seed(23), s)
	assert.Equal(t, OriginNumeric, origin)
	assert.NotEqual(t, HashText("23"), s, "numeric input must not be hashed")
	assert.Zero(t, random.calls)
}

func TestResolve_NumericEdgeCases(t *testing.T) {
	r := &Resolver{Random: &fixedRandom{value: 1}}

	s, origin := r.Resolve("-17")
	assert.Equal(t, Seed(-17), s)
	assert.Equal(t, OriginNumeric, origin)

	s, origin = r.Resolve(" 42 ")
	assert.Equal(t, Seed(42), s)
	assert.Equal(t, OriginNumeric, origin)

	s, origin = r.Resolve("2147483648")
	assert.Equal(t, OriginHashed, origin, "values beyond int32 fall back to hashing")
	assert.Equal(t, HashText("2147483648"), s)
}

func TestResolve_EmptyUsesRandomSourceAndLogs(t *testing.T) {
	var buf bytes.Buffer
	random := &fixedRandom{value: 41}
	r := &Resolver{Random: random, Logger: log.New(&buf, "", 0)}

	s, origin := r.Resolve("")
	require.Equal(t, OriginRandom, origin)
	assert.Equal(t, Seed(42), s)
	assert.Equal(t, 1, random.calls)
	assert.Contains(t, buf.String(), "resolved random seed 42")
}

func TestResolve_RandomSeedIsPositive(t *testing.T) {
	r := &Resolver{}
	for i := 0; i < 100; i++ {
		s, _ := r.Resolve("")
		require.GreaterOrEqual(t, int64(s), int64(1))
		require.LessOrEqual(t, int64(s), int64(math.MaxInt32))
	}
}

func TestResolve_TextIsHashed(t *testing.T) {
	r := &Resolver{}
	s, origin := r.Resolve("hello world")
	assert.Equal(t, OriginHashed, origin)
	assert.Equal(t, Seed(468041293), s)

	s, origin = r.Resolve("   ")
	assert.Equal(t, OriginHashed, origin, "whitespace is not empty input")
	assert.Equal(t, HashText("   "), s)
}
