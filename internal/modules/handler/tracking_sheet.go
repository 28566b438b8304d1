package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/fieldtrack-io/fieldtrack/internal/modules/serializer"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/service"
)

type TrackingSheetHandler struct {
	svc service.TrackingSheetService
}

func NewTrackingSheetHandler(s service.TrackingSheetService) *TrackingSheetHandler {
	return &TrackingSheetHandler{svc: s}
}

type CreateTrackingSheetReq struct {
	Stages []datatypes.JSONMap `json:"stages" binding:"required,min=1"`
}

// CreateTrackingSheet godoc
//
//	@Summary		Create tracking sheet
//	@Description	Create one stage row per entry for a well
//	@Tags			tracking-sheet
//	@Accept			json
//	@Produce		json
//	@Param			well_id	path	string	true	"Well ID"	Format(uuid)
//	@Param			payload	body	handler.CreateTrackingSheetReq	true	"Stages"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response
//	@Router			/tracking-sheet/create/{well_id} [post]
func (h *TrackingSheetHandler) CreateTrackingSheet(c *gin.Context) {
	wellID, err := uuid.Parse(c.Param("well_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := CreateTrackingSheetReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	stages, err := h.svc.CreateStages(c.Request.Context(), wellID, req.Stages)
	if err != nil {
		if errors.Is(err, service.ErrWellNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Well not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Created("Tracking sheet created", gin.H{"stages": stages}))
}

// ListStages godoc
//
//	@Summary		List stages
//	@Description	List a well's tracking sheet stages by the well's external uuid
//	@Tags			tracking-sheet
//	@Produce		json
//	@Param			well_uuid	path	string	true	"Well external UUID"
//	@Security		BearerAuth
//	@Success		200	{object}	map[string][]model.TrackingSheetStage
//	@Router			/tracking-sheet/stage_list/{well_uuid} [get]
func (h *TrackingSheetHandler) ListStages(c *gin.Context) {
	wellUUID := c.Param("well_uuid")
	if wellUUID == "" {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("well_uuid is required", nil))
		return
	}

	stages, err := h.svc.ListStages(c.Request.Context(), wellUUID)
	if err != nil {
		if errors.Is(err, service.ErrWellNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Well not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"stages": stages})
}

// GetStage godoc
//
//	@Summary		Get stage
//	@Description	Fetch a single tracking sheet stage by its sheet id
//	@Tags			tracking-sheet
//	@Produce		json
//	@Param			sheet_id	path	string	true	"Sheet ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.TrackingSheetStage}
//	@Router			/tracking-sheet/{sheet_id} [get]
func (h *TrackingSheetHandler) GetStage(c *gin.Context) {
	sheetID, err := uuid.Parse(c.Param("sheet_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	stage, err := h.svc.GetStage(c.Request.Context(), sheetID)
	if err != nil {
		if errors.Is(err, service.ErrStageNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Stage not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.OK("Stage details", gin.H{"stage": stage}))
}
