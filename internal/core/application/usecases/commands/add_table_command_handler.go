package commands

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/restaurant"
	"kitchen/internal/core/ports"
)

// AddTableCommandHandler mints a table id and stores a free table.
type AddTableCommandHandler struct {
	uowFactory RestaurantUoWFactory
	allocator  ports.SequenceAllocator
}

func NewAddTableCommandHandler(uowFactory RestaurantUoWFactory, allocator ports.SequenceAllocator) AddTableCommandHandler {
	return AddTableCommandHandler{uowFactory: uowFactory, allocator: allocator}
}

func (h *AddTableCommandHandler) Handle(ctx context.Context, cmd AddTableCommand) (kernel.SequenceID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	id, err := h.allocator.Next(ctx, ports.CounterTable)
	if err != nil {
		return 0, err
	}

	table, err := restaurant.NewTable(id, cmd.RestaurantID(), cmd.Number())
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
	if err = repo.AddTable(ctx, table); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
