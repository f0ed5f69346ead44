package commands

import (
	"errors"

	"kitchenpos/internal/pkg/guard"
)

var ErrHideMispricedMenusCommandIsNotConstructed = errors.New(
	"HideMispricedMenusCommand must be created via NewHideMispricedMenusCommand constructor",
)

// HideMispricedMenusCommand re-checks every displayed menu against current
// product prices. It has no parameters.
type HideMispricedMenusCommand struct {
	guard guard.ConstructorGuard
}

func NewHideMispricedMenusCommand() HideMispricedMenusCommand {
	return HideMispricedMenusCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c HideMispricedMenusCommand) Validate() error {
	return c.guard.Validate(ErrHideMispricedMenusCommandIsNotConstructed)
}
