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

type WellDefaultsService interface {
	// Get returns (nil, nil) when the well has no defaults yet; callers map
	// that to 204.
	Get(ctx context.Context, wellID uuid.UUID) (*model.WellDefaults, error)
	// Set creates the record on first call and updates it afterwards.
	Set(ctx context.Context, wellID uuid.UUID, values datatypes.JSONMap) (*model.WellDefaults, error)
}

type wellDefaultsService struct {
	defaults repo.WellDefaultsRepo
	wells    repo.WellRepo
}

func NewWellDefaultsService(defaults repo.WellDefaultsRepo, wells repo.WellRepo) WellDefaultsService {
	return &wellDefaultsService{defaults: defaults, wells: wells}
}

func (s *wellDefaultsService) Get(ctx context.Context, wellID uuid.UUID) (*model.WellDefaults, error) {
	if _, err := s.wells.GetByID(ctx, wellID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWellNotFound
		}
		return nil, err
	}
	return s.defaults.GetByWell(ctx, wellID)
}

func (s *wellDefaultsService) Set(ctx context.Context, wellID uuid.UUID, values datatypes.JSONMap) (*model.WellDefaults, error) {
	if _, err := s.wells.GetByID(ctx, wellID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWellNotFound
		}
		return nil, err
	}

	d := &model.WellDefaults{WellID: wellID, Values: values}
	if err := s.defaults.Upsert(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
