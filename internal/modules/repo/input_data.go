package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
)

type InputDataRepo interface {
	Create(ctx context.Context, f *model.InputDataFile) error
	// LatestPerCategory returns the newest file reference for each category
	// that has at least one upload.
	LatestPerCategory(ctx context.Context, projectID, wellID uuid.UUID) (map[model.InputDataCategory]*model.InputDataFile, error)
}

type inputDataRepo struct{ db *gorm.DB }

func NewInputDataRepo(db *gorm.DB) InputDataRepo {
	return &inputDataRepo{db: db}
}

func (r *inputDataRepo) Create(ctx context.Context, f *model.InputDataFile) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *inputDataRepo) LatestPerCategory(ctx context.Context, projectID, wellID uuid.UUID) (map[model.InputDataCategory]*model.InputDataFile, error) {
	var files []model.InputDataFile
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND well_id = ?", projectID, wellID).
		Order("created_at DESC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}

	out := make(map[model.InputDataCategory]*model.InputDataFile, len(files))
	for i := range files {
		f := &files[i]
		if _, seen := out[f.Category]; !seen {
			out[f.Category] = f
		}
	}
	return out, nil
}
