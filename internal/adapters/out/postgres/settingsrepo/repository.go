package settingsrepo

import (
	"context"
	"errors"

	"github.com/ericks0nmartinez/burger/internal/core/domain/model/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements SettingsRepository using GORM.
// The settings document lives in a single fixed row.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get retrieves the settings document, falling back to the installation
// defaults when no row was saved yet.
func (r *GormSettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	var dto SettingsDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", settingsRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return settings.DefaultSettings(), nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save persists the settings document, creating the row when absent.
func (r *GormSettingsRepository) Save(ctx context.Context, aggregate *settings.Settings) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}
