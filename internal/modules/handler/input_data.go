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

type InputDataHandler struct {
	svc service.InputDataService
}

func NewInputDataHandler(s service.InputDataService) *InputDataHandler {
	return &InputDataHandler{svc: s}
}

type UploadInputDataReq struct {
	ProjectID string `form:"project_id" binding:"required,uuid"`
	WellID    string `form:"well_id" binding:"required,uuid"`
	Category  string `form:"category" binding:"required"`
}

// UploadInputData godoc
//
//	@Summary		Upload input data file
//	@Description	Upload a categorized input file (hydrophone, pumping_data, pressure, survey, gamma_ray, mud_log) for a well
//	@Tags			input-data
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			project_id	formData	string	true	"Project ID"	Format(uuid)
//	@Param			well_id		formData	string	true	"Well ID"		Format(uuid)
//	@Param			category	formData	string	true	"Input data category"
//	@Param			file		formData	file	true	"File to upload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.InputDataFile}
//	@Router			/input-data [post]
func (h *InputDataHandler) UploadInputData(c *gin.Context) {
	req := UploadInputDataReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("file is required", err))
		return
	}

	projectID, _ := uuid.Parse(req.ProjectID)
	wellID, _ := uuid.Parse(req.WellID)

	record, err := h.svc.Upload(c.Request.Context(), service.UploadInputDataInput{
		ProjectID:  projectID,
		WellID:     wellID,
		Category:   model.InputDataCategory(req.Category),
		FileHeader: file,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "upload failed", err))
		return
	}

	c.JSON(http.StatusOK, serializer.OK("File uploaded", gin.H{"input_data": record}))
}

type GetInputDataReq struct {
	ProjectID string `form:"project_id" binding:"required,uuid"`
	WellID    string `form:"well_id" binding:"required,uuid"`
}

// GetInputData godoc
//
//	@Summary		Get input data references
//	@Description	Fetch the per-category file reference map for a well
//	@Tags			input-data
//	@Produce		json
//	@Param			project_id	query	string	true	"Project ID"	Format(uuid)
//	@Param			well_id		query	string	true	"Well ID"		Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/input-data [get]
func (h *InputDataHandler) GetInputData(c *gin.Context) {
	req := GetInputDataReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	projectID, _ := uuid.Parse(req.ProjectID)
	wellID, _ := uuid.Parse(req.WellID)

	refs, err := h.svc.Get(c.Request.Context(), projectID, wellID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(http.StatusInternalServerError, "failed to fetch input data", err))
		return
	}

	c.JSON(http.StatusOK, serializer.OK("Data input details", gin.H{"data_input": refs}))
}
