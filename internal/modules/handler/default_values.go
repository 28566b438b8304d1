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

type DefaultValuesHandler struct {
	svc service.WellDefaultsService
}

func NewDefaultValuesHandler(s service.WellDefaultsService) *DefaultValuesHandler {
	return &DefaultValuesHandler{svc: s}
}

// GetDefaultValues godoc
//
//	@Summary		Get default values
//	@Description	Fetch a well's baseline configuration; 204 when none has been set yet
//	@Tags			default-values
//	@Produce		json
//	@Param			well_id	path	string	true	"Well ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	map[string]interface{}
//	@Success		204	"no defaults set"
//	@Router			/default-values/{well_id} [get]
func (h *DefaultValuesHandler) GetDefaultValues(c *gin.Context) {
	wellID, err := uuid.Parse(c.Param("well_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	defaults, err := h.svc.Get(c.Request.Context(), wellID)
	if err != nil {
		if errors.Is(err, service.ErrWellNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Well not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	// "nothing set yet" is a legitimate state, not an error
	if defaults == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, defaults.Values)
}

// SetDefaultValues godoc
//
//	@Summary		Set default values
//	@Description	Create or update a well's baseline configuration
//	@Tags			default-values
//	@Accept			json
//	@Produce		json
//	@Param			well_id	path	string	true	"Well ID"	Format(uuid)
//	@Param			payload	body	object	true	"Default values"
//	@Security		BearerAuth
//	@Success		200	{object}	map[string]string
//	@Router			/default-values/{well_id} [post]
func (h *DefaultValuesHandler) SetDefaultValues(c *gin.Context) {
	wellID, err := uuid.Parse(c.Param("well_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	var values datatypes.JSONMap
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	if len(values) == 0 {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("empty default values", nil))
		return
	}

	if _, err := h.svc.Set(c.Request.Context(), wellID, values); err != nil {
		if errors.Is(err, service.ErrWellNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Well not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Well's default value has been updated"})
}
