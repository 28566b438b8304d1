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

type DailyLogHandler struct {
	svc service.DailyLogService
}

func NewDailyLogHandler(s service.DailyLogService) *DailyLogHandler {
	return &DailyLogHandler{svc: s}
}

type CreateDailyLogsReq struct {
	Logs []datatypes.JSONMap `json:"logs" binding:"required,min=1"`
}

// CreateDailyLogs godoc
//
//	@Summary		Create daily logs
//	@Description	Append one log record per entry for a well
//	@Tags			daily-log
//	@Accept			json
//	@Produce		json
//	@Param			well_id	path	string	true	"Well ID"	Format(uuid)
//	@Param			payload	body	handler.CreateDailyLogsReq	true	"Log entries"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response
//	@Router			/daily-log/{well_id} [post]
func (h *DailyLogHandler) CreateDailyLogs(c *gin.Context) {
	wellID, err := uuid.Parse(c.Param("well_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := CreateDailyLogsReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	created, err := h.svc.CreateBatch(c.Request.Context(), wellID, req.Logs)
	if err != nil {
		if errors.Is(err, service.ErrWellNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Well not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Created("Daily logs created", gin.H{"created": created}))
}

// ListDailyLogs godoc
//
//	@Summary		List daily logs
//	@Description	List all log records for a well
//	@Tags			daily-log
//	@Produce		json
//	@Param			well_id	path	string	true	"Well ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	map[string][]model.DailyLog
//	@Router			/daily-log/{well_id} [get]
func (h *DailyLogHandler) ListDailyLogs(c *gin.Context) {
	wellID, err := uuid.Parse(c.Param("well_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	logs, err := h.svc.List(c.Request.Context(), wellID)
	if err != nil {
		if errors.Is(err, service.ErrWellNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Well not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
