package random

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededRandomIsDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestSeededRandomDiffersAcrossSeeds(t *testing.T) {
	a := NewSeeded(1)
	b := NewSeeded(2)

	same := true
	for i := 0; i < 20; i++ {
		if a.Intn(1<<30) != b.Intn(1<<30) {
			same = false
		}
	}
	assert.False(t, same)
}

func TestIntnStaysInRange(t *testing.T) {
	for _, r := range []Random{New(), NewSeeded(7)} {
		for i := 0; i < 200; i++ {
			v := r.Intn(9)
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 9)
		}
		assert.Equal(t, 0, r.Intn(0))
		assert.Equal(t, 0, r.Intn(-3))
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	for _, r := range []Random{New(), NewSeeded(3)} {
		values := []int{0, 1, 2, 3, 4, 5, 6, 5, 6}
		r.Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
		sort.Ints(values)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 5, 6, 6}, values)
	}
}

func TestStringUsesAlphabet(t *testing.T) {
	s := NewSeeded(9).String(16, "AB")
	require.Len(t, s, 16)
	for _, ch := range s {
		assert.Contains(t, "AB", string(ch))
	}
	assert.Empty(t, New().String(0, "AB"))
	assert.Empty(t, New().String(4, ""))
}
