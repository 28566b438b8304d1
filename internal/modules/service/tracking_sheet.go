package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/repo"
)

type TrackingSheetService interface {
	// CreateStages writes one stage row per entry and returns the created
	// stages with their sheet ids.
	CreateStages(ctx context.Context, wellID uuid.UUID, stages []datatypes.JSONMap) ([]model.TrackingSheetStage, error)
	// ListStages keys on the well's external uuid, the identifier the field
	// software carries.
	ListStages(ctx context.Context, wellUUID string) ([]model.TrackingSheetStage, error)
	GetStage(ctx context.Context, sheetID uuid.UUID) (*model.TrackingSheetStage, error)
}

type trackingSheetService struct {
	sheets repo.TrackingSheetRepo
	wells  repo.WellRepo
}

func NewTrackingSheetService(sheets repo.TrackingSheetRepo, wells repo.WellRepo) TrackingSheetService {
	return &trackingSheetService{sheets: sheets, wells: wells}
}

func (s *trackingSheetService) CreateStages(ctx context.Context, wellID uuid.UUID, stages []datatypes.JSONMap) ([]model.TrackingSheetStage, error) {
	well, err := s.wells.GetByID(ctx, wellID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWellNotFound
		}
		return nil, err
	}

	records := make([]model.TrackingSheetStage, len(stages))
	for i, data := range stages {
		records[i] = model.TrackingSheetStage{
			WellID:      well.ID,
			StageNumber: i + 1,
			Data:        data,
		}
	}
	if err := s.sheets.CreateStages(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *trackingSheetService) ListStages(ctx context.Context, wellUUID string) ([]model.TrackingSheetStage, error) {
	well, err := s.wells.GetByWellUUID(ctx, wellUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWellNotFound
		}
		return nil, err
	}
	return s.sheets.ListByWell(ctx, well.ID)
}

func (s *trackingSheetService) GetStage(ctx context.Context, sheetID uuid.UUID) (*model.TrackingSheetStage, error) {
	stage, err := s.sheets.GetStage(ctx, sheetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStageNotFound
		}
		return nil, err
	}
	return stage, nil
}
