package geocluster

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLengthCache(t *testing.T) {
	t.Run("SeedsDefault", func(t *testing.T) {
		c, err := NewLengthCache(65)
		require.NoError(t, err)

		assert.Equal(t, 65, c.DefaultDistance())
		assert.Equal(t, 1, c.Len())

		hits, misses, computes := c.Stats()
		assert.Equal(t, int64(0), hits)
		assert.Equal(t, int64(0), misses)
		assert.Equal(t, int64(1), computes)
	})

	t.Run("InvalidDistance", func(t *testing.T) {
		for _, distance := range []int{0, -5} {
			_, err := NewLengthCache(distance)
			require.Error(t, err)

			var id *ErrInvalidDefaultDistance
			require.ErrorAs(t, err, &id)
			assert.Equal(t, distance, id.Distance)
		}
	})
}

func TestForThreshold(t *testing.T) {
	t.Run("DefaultTable", func(t *testing.T) {
		c, err := NewLengthCache(65)
		require.NoError(t, err)

		table, err := c.ForThreshold(65)
		require.NoError(t, err)

		// At zoom 0 a 65px radius spans continents; by zoom 30 it is
		// below the finest cell.
		assert.Equal(t, 1, table[0])
		assert.Equal(t, 3, table[5])
		assert.Equal(t, 5, table[10])
		assert.Equal(t, 12, table[30])
	})

	t.Run("NondecreasingWithZoom", func(t *testing.T) {
		c, err := NewLengthCache(65)
		require.NoError(t, err)

		table, err := c.ForThreshold(65)
		require.NoError(t, err)

		for zoom := 1; zoom < len(table); zoom++ {
			assert.GreaterOrEqual(t, table[zoom], table[zoom-1], "zoom %d", zoom)
		}
	})

	t.Run("CustomThreshold", func(t *testing.T) {
		c, err := NewLengthCache(65)
		require.NoError(t, err)

		table, err := c.ForThreshold(16)
		require.NoError(t, err)

		// A 16px threshold needs a finer grid than the 65px default.
		assert.Equal(t, 6, table[10])
		assert.Equal(t, 2, c.Len())
	})

	t.Run("LargerThresholdCoarser", func(t *testing.T) {
		c, err := NewLengthCache(65)
		require.NoError(t, err)

		fine, err := c.ForThreshold(65)
		require.NoError(t, err)
		coarse, err := c.ForThreshold(260)
		require.NoError(t, err)

		assert.Equal(t, 4, coarse[10])
		for zoom := range coarse {
			assert.LessOrEqual(t, coarse[zoom], fine[zoom], "zoom %d", zoom)
		}
	})

	t.Run("Bounds", func(t *testing.T) {
		c, err := NewLengthCache(65)
		require.NoError(t, err)

		_, err = c.ForThreshold(8)
		assert.NoError(t, err)
		_, err = c.ForThreshold(260)
		assert.NoError(t, err)

		for _, threshold := range []int{7, 261, 0, -10, 1000} {
			_, err := c.ForThreshold(threshold)
			require.Error(t, err)

			var tr *ErrThresholdOutOfRange
			require.ErrorAs(t, err, &tr)
			assert.Equal(t, threshold, tr.Threshold)
			assert.Equal(t, 8, tr.Min)
			assert.Equal(t, 260, tr.Max)
		}
	})

	t.Run("CachesTables", func(t *testing.T) {
		c, err := NewLengthCache(65)
		require.NoError(t, err)

		first, err := c.ForThreshold(100)
		require.NoError(t, err)
		second, err := c.ForThreshold(100)
		require.NoError(t, err)

		assert.Equal(t, first, second)

		hits, misses, computes := c.Stats()
		assert.Equal(t, int64(1), hits)
		assert.Equal(t, int64(1), misses)
		assert.Equal(t, int64(2), computes) // seed + one threshold
	})

	t.Run("ConcurrentComputeOnce", func(t *testing.T) {
		c, err := NewLengthCache(65)
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				table, err := c.ForThreshold(100)
				assert.NoError(t, err)
				assert.Equal(t, 5, table[10])
			}()
		}
		wg.Wait()

		_, _, computes := c.Stats()
		assert.Equal(t, int64(2), computes) // seed + one threshold
	})
}
