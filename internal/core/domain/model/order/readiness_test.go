package order_test

import (
	"testing"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(t *testing.T, part order.Course, n int) []*order.LineItem {
	t.Helper()
	out := make([]*order.LineItem, 0, n)
	for i := 1; i <= n; i++ {
		li, err := order.NewLineItem(kernelID(i), 7, 100, "", nil, part)
		require.NoError(t, err)
		out = append(out, li)
	}
	return out
}

func TestClassify(t *testing.T) {
	t.Run("empty course is neither", func(t *testing.T) {
		r, err := order.Classify(nil, 1)
		require.NoError(t, err)
		assert.Equal(t, order.Neither, r)
	})

	t.Run("only the current part counts", func(t *testing.T) {
		li := items(t, 1, 2)
		li[0].ToggleReady()
		li[1].ToggleReady()

		r, err := order.Classify(li, 2)
		require.NoError(t, err)
		assert.Equal(t, order.Neither, r)

		r, err = order.Classify(li, 1)
		require.NoError(t, err)
		assert.Equal(t, order.Ready, r)
	})

	t.Run("toggling K items walks neither, pending, ready", func(t *testing.T) {
		for _, k := range []int{1, 2, 5} {
			li := items(t, 1, k)
			r, err := order.Classify(li, 1)
			require.NoError(t, err)
			assert.Equal(t, order.Neither, r)

			for i := range li {
				li[i].ToggleReady()
				r, err = order.Classify(li, 1)
				require.NoError(t, err)
				if i < k-1 {
					assert.Equal(t, order.Pending, r, "k=%d after %d toggles", k, i+1)
				} else {
					assert.Equal(t, order.Ready, r, "k=%d after %d toggles", k, i+1)
				}
			}
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		li := items(t, 1, 3)
		li[1].ToggleReady()

		first, err := order.Classify(li, 1)
		require.NoError(t, err)
		second, err := order.Classify(li, 1)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, order.Pending, first)
	})

	t.Run("malformed input is a data-integrity error", func(t *testing.T) {
		_, err := order.Classify(items(t, 1, 1), 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.Classify([]*order.LineItem{nil}, 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestParseReadiness(t *testing.T) {
	r, err := order.ParseReadiness("pending")
	require.NoError(t, err)
	assert.Equal(t, order.Pending, r)
	assert.Equal(t, "ready", order.Ready.String())

	_, err = order.ParseReadiness("cooking")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
