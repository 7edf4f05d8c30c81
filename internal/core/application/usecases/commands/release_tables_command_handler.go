package commands

import (
	"context"
)

// ReleaseTablesCommandHandler clears stale table pointers across all restaurants.
type ReleaseTablesCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

func NewReleaseTablesCommandHandler(uowFactory RestaurantUoWFactory) ReleaseTablesCommandHandler {
	return ReleaseTablesCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of tables released.
func (h *ReleaseTablesCommandHandler) Handle(ctx context.Context, cmd ReleaseTablesCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	released, err := uow.RestaurantRepository().ReleaseStaleTables(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return released, nil
}
