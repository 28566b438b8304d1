package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
)

type DailyLogRepo interface {
	CreateBatch(ctx context.Context, logs []model.DailyLog) error
	ListByWell(ctx context.Context, wellID uuid.UUID) ([]model.DailyLog, error)
}

type dailyLogRepo struct{ db *gorm.DB }

func NewDailyLogRepo(db *gorm.DB) DailyLogRepo {
	return &dailyLogRepo{db: db}
}

func (r *dailyLogRepo) CreateBatch(ctx context.Context, logs []model.DailyLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&logs).Error
}

func (r *dailyLogRepo) ListByWell(ctx context.Context, wellID uuid.UUID) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	err := r.db.WithContext(ctx).
		Where("well_id = ?", wellID).
		Order("created_at ASC").
		Find(&logs).Error
	return logs, err
}
