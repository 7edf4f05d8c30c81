package commands

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler persists a new restaurant with a random identifier.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{uowFactory: uowFactory}
}

// Handle returns the identifier of the created restaurant.
func (h *CreateRestaurantCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRestaurantCommand,
) (kernel.RestaurantID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.RestaurantID{}, err
	}

	r, err := restaurant.NewRestaurant(cmd.Name())
	if err != nil {
		return kernel.RestaurantID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.RestaurantID{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RestaurantRepository().Add(ctx, r); err != nil {
		return kernel.RestaurantID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.RestaurantID{}, err
	}

	return r.ID(), nil
}
