package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fieldtrack-io/fieldtrack/internal/config"
	mq "github.com/fieldtrack-io/fieldtrack/internal/infra/queue"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/repo"
)

type DailyLogService interface {
	// CreateBatch appends one record per entry and returns the created count.
	CreateBatch(ctx context.Context, wellID uuid.UUID, entries []datatypes.JSONMap) (int, error)
	List(ctx context.Context, wellID uuid.UUID) ([]model.DailyLog, error)
}

type dailyLogService struct {
	logs  repo.DailyLogRepo
	wells repo.WellRepo
	pub   *mq.Publisher
	cfg   *config.Config
	log   *zap.Logger
}

func NewDailyLogService(logs repo.DailyLogRepo, wells repo.WellRepo, pub *mq.Publisher, cfg *config.Config, log *zap.Logger) DailyLogService {
	return &dailyLogService{logs: logs, wells: wells, pub: pub, cfg: cfg, log: log}
}

func (s *dailyLogService) CreateBatch(ctx context.Context, wellID uuid.UUID, entries []datatypes.JSONMap) (int, error) {
	well, err := s.wells.GetByID(ctx, wellID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrWellNotFound
		}
		return 0, err
	}

	records := make([]model.DailyLog, len(entries))
	for i, payload := range entries {
		records[i] = model.DailyLog{WellID: well.ID, Payload: payload}
	}
	if err := s.logs.CreateBatch(ctx, records); err != nil {
		return 0, err
	}

	if s.pub != nil {
		if err := s.pub.PublishJSON(ctx, s.cfg.RabbitMQ.ExchangeName, "daily_log.created", map[string]any{
			"well_id": well.ID.String(),
			"count":   len(records),
		}); err != nil {
			s.log.Warn("event publish failed", zap.String("routing_key", "daily_log.created"), zap.Error(err))
		}
	}

	return len(records), nil
}

func (s *dailyLogService) List(ctx context.Context, wellID uuid.UUID) ([]model.DailyLog, error) {
	if _, err := s.wells.GetByID(ctx, wellID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWellNotFound
		}
		return nil, err
	}
	return s.logs.ListByWell(ctx, wellID)
}
