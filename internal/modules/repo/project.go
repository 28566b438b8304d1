package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
)

// ProjectAggregate carries every row the create-project transaction writes.
// The project row is created first; child foreign keys are filled in before
// their inserts.
type ProjectAggregate struct {
	Project   *model.Project
	Equipment *model.Equipment
	Client    *model.Client
	Pad       *model.Pad
	Wells     []model.Well
	JobInfo   *model.JobInfo
	Crew      []model.ProjectCrew
}

type ProjectRepo interface {
	// CreateAggregate writes the whole aggregate and the user association in
	// one transaction. Either every row commits or none do.
	CreateAggregate(ctx context.Context, userID uuid.UUID, agg *ProjectAggregate) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) CreateAggregate(ctx context.Context, userID uuid.UUID, agg *ProjectAggregate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(agg.Project).Error; err != nil {
			return err
		}
		projectID := agg.Project.ID

		agg.Equipment.ProjectID = projectID
		if err := tx.Create(agg.Equipment).Error; err != nil {
			return err
		}

		agg.Client.ProjectID = projectID
		if err := tx.Create(agg.Client).Error; err != nil {
			return err
		}

		agg.Pad.ProjectID = projectID
		agg.Pad.NumberOfWells = len(agg.Wells)
		if err := tx.Create(agg.Pad).Error; err != nil {
			return err
		}

		for i := range agg.Wells {
			agg.Wells[i].PadID = agg.Pad.ID
		}
		if len(agg.Wells) > 0 {
			if err := tx.Create(&agg.Wells).Error; err != nil {
				return err
			}
		}

		agg.JobInfo.ProjectID = projectID
		if err := tx.Create(agg.JobInfo).Error; err != nil {
			return err
		}

		for i := range agg.Crew {
			agg.Crew[i].ProjectID = projectID
		}
		if len(agg.Crew) > 0 {
			if err := tx.Create(&agg.Crew).Error; err != nil {
				return err
			}
		}

		link := model.UserProject{UserID: userID, ProjectID: projectID}
		return tx.Create(&link).Error
	})
}

func (r *projectRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Preload("Equipment").
		Preload("Client").
		Preload("Pad").
		Preload("Pad.Wells").
		Preload("JobInfo").
		Preload("ProjectCrew").
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Joins("JOIN project_user ON project_user.project_id = projects.id").
		Where("project_user.user_id = ?", userID).
		Order("projects.created_at ASC").
		Preload("Pad").
		Find(&projects).Error
	return projects, err
}
