package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
)

type TrackingSheetRepo interface {
	CreateStages(ctx context.Context, stages []model.TrackingSheetStage) error
	ListByWell(ctx context.Context, wellID uuid.UUID) ([]model.TrackingSheetStage, error)
	GetStage(ctx context.Context, sheetID uuid.UUID) (*model.TrackingSheetStage, error)
}

type trackingSheetRepo struct{ db *gorm.DB }

func NewTrackingSheetRepo(db *gorm.DB) TrackingSheetRepo {
	return &trackingSheetRepo{db: db}
}

func (r *trackingSheetRepo) CreateStages(ctx context.Context, stages []model.TrackingSheetStage) error {
	if len(stages) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&stages).Error
}

func (r *trackingSheetRepo) ListByWell(ctx context.Context, wellID uuid.UUID) ([]model.TrackingSheetStage, error) {
	var stages []model.TrackingSheetStage
	err := r.db.WithContext(ctx).
		Where("well_id = ?", wellID).
		Order("stage_number ASC").
		Find(&stages).Error
	return stages, err
}

func (r *trackingSheetRepo) GetStage(ctx context.Context, sheetID uuid.UUID) (*model.TrackingSheetStage, error) {
	var stage model.TrackingSheetStage
	if err := r.db.WithContext(ctx).Where("id = ?", sheetID).First(&stage).Error; err != nil {
		return nil, err
	}
	return &stage, nil
}
