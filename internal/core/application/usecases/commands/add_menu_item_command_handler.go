package commands

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/restaurant"
	"kitchen/internal/core/ports"
)

// AddMenuItemCommandHandler mints a menu item id and stores the dish.
type AddMenuItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
	allocator  ports.SequenceAllocator
}

func NewAddMenuItemCommandHandler(
	uowFactory RestaurantUoWFactory,
	allocator ports.SequenceAllocator,
) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{uowFactory: uowFactory, allocator: allocator}
}

// Handle returns the new menu item id. An unknown restaurant is reported as not found.
func (h *AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) (kernel.SequenceID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	id, err := h.allocator.Next(ctx, ports.CounterMenuItem)
	if err != nil {
		return 0, err
	}

	item, err := restaurant.NewMenuItem(id, cmd.RestaurantID(), cmd.Name(), cmd.Category(), cmd.Price())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RestaurantRepository()
	if _, err = repo.Get(ctx, cmd.RestaurantID()); err != nil {
		return 0, err
	}
	if err = repo.AddMenuItem(ctx, item); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
