package commands

import (
	"errors"

	"kitchen/internal/pkg/guard"
)

var (
	ErrReleaseTablesCommandIsNotConstructed = errors.New(
		"ReleaseTablesCommand must be created via NewReleaseTablesCommand constructor",
	)
)

// ReleaseTablesCommand frees tables still pointing at served or deleted orders.
// This is a parameterless command run by the table release job.
type ReleaseTablesCommand struct {
	guard guard.ConstructorGuard
}

func NewReleaseTablesCommand() ReleaseTablesCommand {
	return ReleaseTablesCommand{guard: guard.NewConstructorGuard()}
}

func (c ReleaseTablesCommand) Validate() error {
	return c.guard.Validate(ErrReleaseTablesCommandIsNotConstructed)
}
