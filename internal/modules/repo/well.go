package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
)

type WellRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Well, error)
	GetByWellUUID(ctx context.Context, wellUUID string) (*model.Well, error)
}

type wellRepo struct{ db *gorm.DB }

func NewWellRepo(db *gorm.DB) WellRepo {
	return &wellRepo{db: db}
}

func (r *wellRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Well, error) {
	var well model.Well
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&well).Error; err != nil {
		return nil, err
	}
	return &well, nil
}

func (r *wellRepo) GetByWellUUID(ctx context.Context, wellUUID string) (*model.Well, error) {
	var well model.Well
	if err := r.db.WithContext(ctx).Where("well_uuid = ?", wellUUID).First(&well).Error; err != nil {
		return nil, err
	}
	return &well, nil
}
