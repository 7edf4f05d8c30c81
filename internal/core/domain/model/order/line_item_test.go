package order_test

import (
	"testing"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	t.Run("should create a not ready item", func(t *testing.T) {
		mods := []order.Modification{mustMod(t, order.ModAllergy, "peanut")}

		li, err := order.NewLineItem(41, 7, 1250, "no ice", mods, 2)

		require.NoError(t, err)
		require.NoError(t, li.Validate())
		assert.False(t, li.IsReady())
		assert.Equal(t, order.Course(2), li.Part())
		assert.Equal(t, "no ice", li.Note())
		assert.True(t, li.Mods().SameSequence(mods))
	})

	t.Run("should copy the modification list", func(t *testing.T) {
		mods := []order.Modification{mustMod(t, order.ModAdd, "bacon")}
		li, err := order.NewLineItem(41, 7, 0, "", mods, 1)
		require.NoError(t, err)

		mods[0] = mustMod(t, order.ModRemove, "bacon")

		assert.Equal(t, order.ModAdd, li.Mods()[0].Operation())
	})

	t.Run("should reject invalid fields", func(t *testing.T) {
		li, err := order.NewLineItem(0, 0, -1, "", []order.Modification{{}}, 0)

		require.Error(t, err)
		assert.Nil(t, li)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLineItem_ToggleReady(t *testing.T) {
	li, err := order.NewLineItem(41, 7, 100, "", nil, 1)
	require.NoError(t, err)

	assert.False(t, li.ToggleReady())
	assert.True(t, li.IsReady())
	assert.True(t, li.ToggleReady())
	assert.False(t, li.IsReady())
}

func TestNewModification(t *testing.T) {
	m, err := order.NewModification(order.ModRemove, " onion ")
	require.NoError(t, err)
	assert.Equal(t, "remove onion", m.String())

	_, err = order.NewModification("swap", "onion")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.NewModification(order.ModAdd, "  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestModifications_SameSequence(t *testing.T) {
	a := mustMod(t, order.ModAdd, "cheese")
	b := mustMod(t, order.ModRemove, "onion")

	assert.True(t, order.Modifications{a, b}.SameSequence(order.Modifications{a, b}))
	assert.False(t, order.Modifications{a, b}.SameSequence(order.Modifications{b, a}))
	assert.False(t, order.Modifications{a}.SameSequence(order.Modifications{a, b}))
	assert.True(t, order.Modifications(nil).SameSequence(order.Modifications{}))
}

func TestParseChannel(t *testing.T) {
	c, err := order.ParseChannel("takeout")
	require.NoError(t, err)
	assert.Equal(t, order.Takeout, c)

	_, err = order.ParseChannel("drive-thru")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
