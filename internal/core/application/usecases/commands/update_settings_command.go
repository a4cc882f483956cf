package commands

import (
	"errors"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/settings"
	"github.com/ericks0nmartinez/burger/internal/pkg/guard"
)

var ErrUpdateSettingsCommandIsNotConstructed = errors.New(
	"UpdateSettingsCommand must be created via NewUpdateSettingsCommand constructor",
)

// UpdateSettingsCommand represents a partial update of the system settings
// document. Unset fields keep their current value; validation of the set
// fields happens in the aggregate when the patch is applied.
type UpdateSettingsCommand struct { //nolint:recvcheck //using for validation
	patch settings.Patch

	guard guard.ConstructorGuard
}

// NewUpdateSettingsCommand creates a command carrying a settings patch.
func NewUpdateSettingsCommand(patch settings.Patch) (UpdateSettingsCommand, error) {
	return UpdateSettingsCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSettingsCommandIsNotConstructed)
}

// Patch returns the partial update.
func (c UpdateSettingsCommand) Patch() settings.Patch {
	return c.patch
}
