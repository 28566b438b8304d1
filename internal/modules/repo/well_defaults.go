package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
)

type WellDefaultsRepo interface {
	// GetByWell returns (nil, nil) when no defaults exist yet; the handler
	// maps that to 204.
	GetByWell(ctx context.Context, wellID uuid.UUID) (*model.WellDefaults, error)
	Upsert(ctx context.Context, d *model.WellDefaults) error
}

type wellDefaultsRepo struct{ db *gorm.DB }

func NewWellDefaultsRepo(db *gorm.DB) WellDefaultsRepo {
	return &wellDefaultsRepo{db: db}
}

func (r *wellDefaultsRepo) GetByWell(ctx context.Context, wellID uuid.UUID) (*model.WellDefaults, error) {
	var defaults model.WellDefaults
	err := r.db.WithContext(ctx).Where("well_id = ?", wellID).First(&defaults).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &defaults, nil
}

func (r *wellDefaultsRepo) Upsert(ctx context.Context, d *model.WellDefaults) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.WellDefaults
		err := tx.Where("well_id = ?", d.WellID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(d).Error
		}
		if err != nil {
			return err
		}
		existing.Values = d.Values
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		*d = existing
		return nil
	})
}
