package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fieldtrack-io/fieldtrack/internal/config"
	mq "github.com/fieldtrack-io/fieldtrack/internal/infra/queue"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/repo"
)

type ProjectService interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateProjectInput) (*model.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
}

type projectService struct {
	projects repo.ProjectRepo
	pub      *mq.Publisher
	cfg      *config.Config
	log      *zap.Logger
}

// NewProjectService builds the service. pub may be nil when no broker is
// configured; events are then skipped.
func NewProjectService(projects repo.ProjectRepo, pub *mq.Publisher, cfg *config.Config, log *zap.Logger) ProjectService {
	return &projectService{projects: projects, pub: pub, cfg: cfg, log: log}
}

type ProjectValuesInput struct {
	ProjectName string `json:"project_name"`
}

type EquipmentValuesInput struct {
	TrailerID     string `json:"trailer_id"`
	PowerpackID   string `json:"powerpack_id"`
	SourceID      string `json:"source_id"`
	AccumulatorID string `json:"accumulator_id"`
	HydrophonesID string `json:"hydrophones_id"`
	TransducerID  string `json:"transducer_id"`
	HotspotID     string `json:"hotspot_id"`
}

// PadInfoValuesInput carries both the pad and the pad-level client fields,
// the way field engineers submit them.
type PadInfoValuesInput struct {
	PadName            string `json:"pad_name"`
	ClientName         string `json:"client_name"`
	OperatorName       string `json:"operator_name"`
	ServiceCompanyName string `json:"service_company_name"`
	WirelineCompany    string `json:"wireline_company"`
}

type WellInfoValuesInput struct {
	WellName string `json:"well_name"`
	WellUUID string `json:"well_uuid"`
}

type JobInfoValuesInput struct {
	JobID   string `json:"job_id"`
	JobName string `json:"job_name"`
	AfeID   string `json:"afe_id"`
	JobType string `json:"job_type"`
	// Epoch milliseconds on the wire.
	JobStartDate int64  `json:"job_start_date"`
	JobEndDate   int64  `json:"job_end_date"`
	CountyName   string `json:"county_name"`
	BasinName    string `json:"basin_name"`
	State        string `json:"state"`
}

type CrewInfoValuesInput struct {
	CrewName string `json:"crew_name"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type CreateProjectInput struct {
	ProjectValues   ProjectValuesInput
	EquipmentValues EquipmentValuesInput
	PadInfoValues   PadInfoValuesInput
	WellInfoValues  []WellInfoValuesInput
	JobInfoValues   JobInfoValuesInput
	CrewInfoValues  []CrewInfoValuesInput
}

// epochMillisToTime truncates to whole seconds; sub-second precision from
// the field software is noise.
func epochMillisToTime(ms int64) time.Time {
	return time.Unix(ms/1000, 0).UTC()
}

func (s *projectService) Create(ctx context.Context, userID uuid.UUID, in CreateProjectInput) (*model.Project, error) {
	if !model.JobType(in.JobInfoValues.JobType).Valid() {
		return nil, ErrInvalidJobType
	}
	if !model.ValidUSState(in.JobInfoValues.State) {
		return nil, ErrInvalidState
	}
	if in.JobInfoValues.JobStartDate > in.JobInfoValues.JobEndDate {
		return nil, ErrInvalidDateRange
	}

	wells := make([]model.Well, len(in.WellInfoValues))
	for i, w := range in.WellInfoValues {
		wellUUID := w.WellUUID
		if wellUUID == "" {
			wellUUID = uuid.NewString()
		}
		wells[i] = model.Well{WellName: w.WellName, WellUUID: wellUUID}
	}

	crew := make([]model.ProjectCrew, len(in.CrewInfoValues))
	for i, c := range in.CrewInfoValues {
		crew[i] = model.ProjectCrew{
			CrewName: c.CrewName,
			Role:     c.Role,
			Phone:    c.Phone,
			Email:    c.Email,
		}
	}

	agg := &repo.ProjectAggregate{
		Project: &model.Project{ProjectName: in.ProjectValues.ProjectName},
		Equipment: &model.Equipment{
			TrailerID:     in.EquipmentValues.TrailerID,
			PowerpackID:   in.EquipmentValues.PowerpackID,
			SourceID:      in.EquipmentValues.SourceID,
			AccumulatorID: in.EquipmentValues.AccumulatorID,
			HydrophonesID: in.EquipmentValues.HydrophonesID,
			TransducerID:  in.EquipmentValues.TransducerID,
			HotspotID:     in.EquipmentValues.HotspotID,
		},
		Client: &model.Client{
			ClientName:         in.PadInfoValues.ClientName,
			OperatorName:       in.PadInfoValues.OperatorName,
			ServiceCompanyName: in.PadInfoValues.ServiceCompanyName,
			WirelineCompany:    in.PadInfoValues.WirelineCompany,
		},
		Pad: &model.Pad{PadName: in.PadInfoValues.PadName},
		JobInfo: &model.JobInfo{
			JobID:        in.JobInfoValues.JobID,
			JobName:      in.JobInfoValues.JobName,
			AfeID:        in.JobInfoValues.AfeID,
			JobType:      model.JobType(in.JobInfoValues.JobType),
			JobStartDate: epochMillisToTime(in.JobInfoValues.JobStartDate),
			JobEndDate:   epochMillisToTime(in.JobInfoValues.JobEndDate),
			CountyName:   in.JobInfoValues.CountyName,
			BasinName:    in.JobInfoValues.BasinName,
			State:        in.JobInfoValues.State,
		},
		Wells: wells,
		Crew:  crew,
	}

	if err := s.projects.CreateAggregate(ctx, userID, agg); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "project.created", map[string]any{
		"project_id":   agg.Project.ID.String(),
		"project_name": agg.Project.ProjectName,
		"well_count":   len(agg.Wells),
	})

	return s.projects.GetByID(ctx, agg.Project.ID)
}

func (s *projectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	return s.projects.ListByUser(ctx, userID)
}

// publishEvent is best-effort; a broker outage never fails the request.
func (s *projectService) publishEvent(ctx context.Context, key string, body map[string]any) {
	if s.pub == nil {
		return
	}
	if err := s.pub.PublishJSON(ctx, s.cfg.RabbitMQ.ExchangeName, key, body); err != nil {
		s.log.Warn("event publish failed", zap.String("routing_key", key), zap.Error(err))
	}
}
