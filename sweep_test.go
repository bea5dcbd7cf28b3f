package mmc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mmc "github.com/lec00q/aws-expenses"
)

func TestSweep(t *testing.T) {
	t.Run("server count below range", func(t *testing.T) {
		_, err := mmc.Sweep(t.Context(), 1, 1, 0)
		assert.ErrorIs(t, err, mmc.ErrInvalidServerCount)
	})

	t.Run("server count above range", func(t *testing.T) {
		_, err := mmc.Sweep(t.Context(), 1, 1, mmc.MaxServers+1)
		assert.ErrorIs(t, err, mmc.ErrInvalidServerCount)
	})

	t.Run("negative arrival rate", func(t *testing.T) {
		_, err := mmc.Sweep(t.Context(), -1, 7, 5)
		assert.ErrorIs(t, err, mmc.ErrInvalidRate)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := mmc.Sweep(ctx, 1, 1, 10)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("positive case", func(t *testing.T) {
		results, err := mmc.Sweep(t.Context(), 10.0/60, 7, 10)
		require.NoError(t, err)
		require.Len(t, results, 10)

		for i, res := range results {
			expected, err := mmc.Compute(10.0/60, 7, i+1)
			require.NoError(t, err)

			assert.Equal(t, i+1, res.Servers())
			assert.Equal(t, expected.Utilization(), res.Utilization())
			assert.Equal(t, expected.TimeInSystem(), res.TimeInSystem())
		}
	})
}
