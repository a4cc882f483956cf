package commands

import (
	"context"
)

// UpdateSettingsCommandHandler handles partial updates of the system settings
// document. An invalid patch leaves the stored settings untouched.
type UpdateSettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewUpdateSettingsCommandHandler creates a handler for settings updates.
func NewUpdateSettingsCommandHandler(uowFactory SettingsUoWFactory) UpdateSettingsCommandHandler {
	return UpdateSettingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the settings document, applies the patch and persists the
// result.
func (h *UpdateSettingsCommandHandler) Handle(ctx context.Context, cmd UpdateSettingsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	settingsRepo := uow.SettingsRepository()
	aggregate, err := settingsRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = aggregate.Patch(cmd.Patch()); err != nil {
		return err
	}

	if err = settingsRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
