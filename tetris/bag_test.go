package tetris_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertEachKindOncePerWindow(t *testing.T, bag tetris.Randomizer, windows int) {
	t.Helper()
	for w := 0; w < windows; w++ {
		taken := make(map[tetris.Tetromino]int)
		for range len(tetris.Tetrominoes) {
			taken[bag.Next()]++
		}
		for _, kind := range tetris.Tetrominoes {
			if !assert.Equal(t, 1, taken[kind], "window %d: kind %s", w, kind) {
				return
			}
		}
	}
}

func TestBagDealsEveryKindPerRefill(t *testing.T) {
	t.Run("seeded", func(t *testing.T) {
		assertEachKindOncePerWindow(t, tetris.NewSeededBag(1), 50)
	})

	t.Run("entropy", func(t *testing.T) {
		assertEachKindOncePerWindow(t, tetris.NewBag(), 50)
	})
}

func TestBagPeekMatchesNext(t *testing.T) {
	for _, n := range []int{0, 1, 3, 6, 7, 8, 14, 30} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			bag := tetris.NewSeededBag(99)
			// Start mid-bag so the peek window crosses refills.
			bag.Next()
			bag.Next()

			peeked := bag.Peek(n)
			require.Len(t, peeked, n)

			drawn := make([]tetris.Tetromino, n)
			for i := range drawn {
				drawn[i] = bag.Next()
			}
			assert.Equal(t, peeked, drawn)
		})
	}
}

func TestBagPeekIsRepeatable(t *testing.T) {
	bag := tetris.NewSeededBag(5)

	first := bag.Peek(20)
	assert.Equal(t, first, bag.Peek(20))
	assert.Equal(t, first[:3], bag.Peek(3))

	bag.Next()
	assert.Equal(t, first[1:], bag.Peek(19), "Next advances Peek by exactly one draw")
}

func TestBagPeekNonPositive(t *testing.T) {
	bag := tetris.NewSeededBag(5)
	assert.Empty(t, bag.Peek(0))
	assert.Empty(t, bag.Peek(-3))
	assert.Equal(t, 7, bag.Len())
}

func TestBagSeedIsDeterministic(t *testing.T) {
	a := tetris.NewSeededBag(1234)
	b := tetris.NewSeededBag(1234)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next(), "draw %d", i)
	}
}

func TestBagLen(t *testing.T) {
	bag := tetris.NewSeededBag(0)
	assert.Equal(t, 7, bag.Len(), "a new bag is refilled immediately")

	bag.Next()
	assert.Equal(t, 6, bag.Len())

	for range 6 {
		bag.Next()
	}
	assert.Equal(t, 0, bag.Len())

	bag.Next()
	assert.Equal(t, 6, bag.Len())
}
