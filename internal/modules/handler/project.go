package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/serializer"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type ProjectValuesReq struct {
	ProjectName string `json:"project_name" binding:"required"`
}

// EquipmentValuesReq mirrors the field-software payload; note the historical
// "trailers_id" wire name for what is stored as trailer_id.
type EquipmentValuesReq struct {
	TrailersID    string `json:"trailers_id"`
	PowerpackID   string `json:"powerpack_id"`
	SourceID      string `json:"source_id"`
	AccumulatorID string `json:"accumulator_id"`
	HydrophonesID string `json:"hydrophones_id"`
	TransducerID  string `json:"transducer_id"`
	HotspotID     string `json:"hotspot_id"`
}

type PadInfoValuesReq struct {
	PadName            string `json:"pad_name" binding:"required"`
	ClientName         string `json:"client_name" binding:"required"`
	OperatorName       string `json:"operator_name"`
	ServiceCompanyName string `json:"service_company_name"`
	WirelineCompany    string `json:"wireline_company"`
}

type WellInfoValuesReq struct {
	WellName string `json:"well_name" binding:"required"`
	WellUUID string `json:"well_uuid"`
}

type JobInfoValuesReq struct {
	JobID        string `json:"job_id" binding:"required"`
	JobName      string `json:"job_name" binding:"required"`
	AfeID        string `json:"afe_id"`
	JobType      string `json:"job_type" binding:"required,jobtype"`
	JobStartDate int64  `json:"job_start_date" binding:"required"`
	JobEndDate   int64  `json:"job_end_date" binding:"required"`
	CountyName   string `json:"county_name"`
	BasinName    string `json:"basin_name"`
	State        string `json:"state" binding:"required,usstate"`
}

type CrewInfoValuesReq struct {
	CrewName string `json:"crew_name" binding:"required"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type CreateProjectReq struct {
	ProjectValues   ProjectValuesReq    `json:"projectValues" binding:"required"`
	EquipmentValues EquipmentValuesReq  `json:"equipmentValues" binding:"required"`
	PadInfoValues   PadInfoValuesReq    `json:"padInfoValues" binding:"required"`
	WellInfoValues  []WellInfoValuesReq `json:"wellInfoValues" binding:"required,min=1,dive"`
	JobInfoValues   JobInfoValuesReq    `json:"jobInfoValues" binding:"required"`
	CrewInfoValues  []CrewInfoValuesReq `json:"crewInfoValues" binding:"dive"`
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Create a project with equipment, client, pad, wells, job info and crew in one transaction
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateProjectReq	true	"Project payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Router			/project [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	user, ok := c.MustGet("user").(*model.User)
	if !ok {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", errors.New("user not found")))
		return
	}

	wells := make([]service.WellInfoValuesInput, len(req.WellInfoValues))
	for i, w := range req.WellInfoValues {
		wells[i] = service.WellInfoValuesInput{WellName: w.WellName, WellUUID: w.WellUUID}
	}
	crew := make([]service.CrewInfoValuesInput, len(req.CrewInfoValues))
	for i, cr := range req.CrewInfoValues {
		crew[i] = service.CrewInfoValuesInput{
			CrewName: cr.CrewName,
			Role:     cr.Role,
			Phone:    cr.Phone,
			Email:    cr.Email,
		}
	}

	project, err := h.svc.Create(c.Request.Context(), user.ID, service.CreateProjectInput{
		ProjectValues: service.ProjectValuesInput{ProjectName: req.ProjectValues.ProjectName},
		EquipmentValues: service.EquipmentValuesInput{
			TrailerID:     req.EquipmentValues.TrailersID,
			PowerpackID:   req.EquipmentValues.PowerpackID,
			SourceID:      req.EquipmentValues.SourceID,
			AccumulatorID: req.EquipmentValues.AccumulatorID,
			HydrophonesID: req.EquipmentValues.HydrophonesID,
			TransducerID:  req.EquipmentValues.TransducerID,
			HotspotID:     req.EquipmentValues.HotspotID,
		},
		PadInfoValues: service.PadInfoValuesInput{
			PadName:            req.PadInfoValues.PadName,
			ClientName:         req.PadInfoValues.ClientName,
			OperatorName:       req.PadInfoValues.OperatorName,
			ServiceCompanyName: req.PadInfoValues.ServiceCompanyName,
			WirelineCompany:    req.PadInfoValues.WirelineCompany,
		},
		WellInfoValues: wells,
		JobInfoValues: service.JobInfoValuesInput{
			JobID:        req.JobInfoValues.JobID,
			JobName:      req.JobInfoValues.JobName,
			AfeID:        req.JobInfoValues.AfeID,
			JobType:      req.JobInfoValues.JobType,
			JobStartDate: req.JobInfoValues.JobStartDate,
			JobEndDate:   req.JobInfoValues.JobEndDate,
			CountyName:   req.JobInfoValues.CountyName,
			BasinName:    req.JobInfoValues.BasinName,
			State:        req.JobInfoValues.State,
		},
		CrewInfoValues: crew,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDateRange),
			errors.Is(err, service.ErrInvalidJobType),
			errors.Is(err, service.ErrInvalidState):
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
		default:
			c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		}
		return
	}

	c.JSON(http.StatusOK, serializer.OK("Project created successfully!", gin.H{"project": project}))
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	List the authenticated user's projects
//	@Tags			project
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	map[string][]model.Project
//	@Router			/project/list [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	user, ok := c.MustGet("user").(*model.User)
	if !ok {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", errors.New("user not found")))
		return
	}

	projects, err := h.svc.List(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetProject godoc
//
//	@Summary		Get project
//	@Description	Fetch a single project aggregate by id
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Router			/project/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, err := h.svc.Get(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Project not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.OK("Project details", gin.H{"project": project}))
}
