package commands

import (
	"errors"
	"strings"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
)

// CreateRestaurantCommand registers a new restaurant.
//
// Example:
//
//	cmd, err := NewCreateRestaurantCommand("Trattoria")
//	id, err := handler.Handle(ctx, cmd)
type CreateRestaurantCommand struct {
	name  string
	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand requires a non-blank name.
func NewCreateRestaurantCommand(name string) (CreateRestaurantCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CreateRestaurantCommand{}, errs.NewValueIsRequiredError("name")
	}
	return CreateRestaurantCommand{name: name, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) Name() string {
	return c.name
}
