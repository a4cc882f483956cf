package ports

import (
	"context"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/settings"
)

// SettingsRepository defines the persistence contract for the single system
// settings document.
type SettingsRepository interface {
	// Get retrieves the settings document. Implementations return the
	// installation defaults when no document was saved yet.
	Get(ctx context.Context) (*settings.Settings, error)

	// Save persists the settings document, creating it when absent.
	Save(ctx context.Context, aggregate *settings.Settings) error
}
