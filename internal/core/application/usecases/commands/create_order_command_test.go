package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	restaurantID := kernel.NewRestaurantID()
	table := kernel.SequenceID(3)
	lines := []commands.LineItemInput{{MenuItemID: 1, Note: " rare "}}

	cmd, err := commands.NewCreateOrderCommand(restaurantID, order.DineIn, 5, &table, lines)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, order.DineIn, cmd.Channel())
	assert.Equal(t, 5, cmd.Number())
	assert.Equal(t, table, *cmd.TableID())
	require.Len(t, cmd.LineItems(), 1)
	assert.Equal(t, "rare", cmd.LineItems()[0].Note)
}

func TestNewCreateOrderCommand_RequiresLineItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewRestaurantID(), order.Takeout, 1, nil, nil)
	require.ErrorIs(t, err, commands.ErrLineItemsAreRequired)
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	bad := kernel.SequenceID(0)
	_, err := commands.NewCreateOrderCommand(kernel.RestaurantID{}, "drive-thru", 1, &bad,
		[]commands.LineItemInput{{MenuItemID: 0}})

	require.Error(t, err)
	require.ErrorIs(t, err, kernel.ErrRestaurantIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
