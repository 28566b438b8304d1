package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/service"
)

// MockTrackingSheetService is a mock implementation of TrackingSheetService
type MockTrackingSheetService struct {
	mock.Mock
}

func (m *MockTrackingSheetService) CreateStages(ctx context.Context, wellID uuid.UUID, stages []datatypes.JSONMap) ([]model.TrackingSheetStage, error) {
	args := m.Called(ctx, wellID, stages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TrackingSheetStage), args.Error(1)
}

func (m *MockTrackingSheetService) ListStages(ctx context.Context, wellUUID string) ([]model.TrackingSheetStage, error) {
	args := m.Called(ctx, wellUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TrackingSheetStage), args.Error(1)
}

func (m *MockTrackingSheetService) GetStage(ctx context.Context, sheetID uuid.UUID) (*model.TrackingSheetStage, error) {
	args := m.Called(ctx, sheetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrackingSheetStage), args.Error(1)
}

func setupTrackingSheetRouter(h *TrackingSheetHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/tracking-sheet/create/:well_id", h.CreateTrackingSheet)
	r.GET("/tracking-sheet/stage_list/:well_uuid", h.ListStages)
	r.GET("/tracking-sheet/:sheet_id", h.GetStage)
	return r
}

func TestTrackingSheetHandler_CreateTrackingSheet(t *testing.T) {
	wellID := uuid.New()

	tests := []struct {
		name           string
		wellParam      string
		body           any
		setup          func(*MockTrackingSheetService)
		expectedStatus int
	}{
		{
			name:      "stages created in order",
			wellParam: wellID.String(),
			body: CreateTrackingSheetReq{Stages: []datatypes.JSONMap{
				{"plug_depth": 8200.0},
				{"plug_depth": 8150.0},
			}},
			setup: func(svc *MockTrackingSheetService) {
				svc.On("CreateStages", mock.Anything, wellID, mock.AnythingOfType("[]datatypes.JSONMap")).
					Return([]model.TrackingSheetStage{
						{ID: uuid.New(), WellID: wellID, StageNumber: 1},
						{ID: uuid.New(), WellID: wellID, StageNumber: 2},
					}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "empty stages rejected",
			wellParam:      wellID.String(),
			body:           CreateTrackingSheetReq{Stages: []datatypes.JSONMap{}},
			setup:          func(svc *MockTrackingSheetService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "unknown well",
			wellParam: wellID.String(),
			body:      CreateTrackingSheetReq{Stages: []datatypes.JSONMap{{"plug_depth": 8200.0}}},
			setup: func(svc *MockTrackingSheetService) {
				svc.On("CreateStages", mock.Anything, wellID, mock.AnythingOfType("[]datatypes.JSONMap")).
					Return(nil, service.ErrWellNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockTrackingSheetService{}
			tt.setup(mockService)

			handler := NewTrackingSheetHandler(mockService)
			router := setupTrackingSheetRouter(handler)

			payload, err := sonic.Marshal(tt.body)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/tracking-sheet/create/"+tt.wellParam, bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestTrackingSheetHandler_ListStages(t *testing.T) {
	wellUUID := uuid.NewString()
	stages := []model.TrackingSheetStage{
		{ID: uuid.New(), StageNumber: 1},
		{ID: uuid.New(), StageNumber: 2},
	}

	mockService := &MockTrackingSheetService{}
	mockService.On("ListStages", mock.Anything, wellUUID).Return(stages, nil)

	handler := NewTrackingSheetHandler(mockService)
	router := setupTrackingSheetRouter(handler)

	req := httptest.NewRequest("GET", "/tracking-sheet/stage_list/"+wellUUID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string][]model.TrackingSheetStage
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp["stages"], 2)
	assert.Equal(t, 1, resp["stages"][0].StageNumber)
	mockService.AssertExpectations(t)
}

func TestTrackingSheetHandler_GetStage(t *testing.T) {
	sheetID := uuid.New()

	tests := []struct {
		name           string
		param          string
		setup          func(*MockTrackingSheetService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "found",
			param: sheetID.String(),
			setup: func(svc *MockTrackingSheetService) {
				svc.On("GetStage", mock.Anything, sheetID).
					Return(&model.TrackingSheetStage{ID: sheetID, StageNumber: 3}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Stage details",
		},
		{
			name:  "not found",
			param: sheetID.String(),
			setup: func(svc *MockTrackingSheetService) {
				svc.On("GetStage", mock.Anything, sheetID).Return(nil, service.ErrStageNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "service layer error",
			param: sheetID.String(),
			setup: func(svc *MockTrackingSheetService) {
				svc.On("GetStage", mock.Anything, sheetID).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockTrackingSheetService{}
			tt.setup(mockService)

			handler := NewTrackingSheetHandler(mockService)
			router := setupTrackingSheetRouter(handler)

			req := httptest.NewRequest("GET", "/tracking-sheet/"+tt.param, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestTrackingSheetHandler_StageIDRoundTrip(t *testing.T) {
	// the stage row id serializes as sheet_id, which is what GetStage accepts
	sheetID := uuid.New()
	stage := model.TrackingSheetStage{ID: sheetID, StageNumber: 1}

	raw, err := sonic.Marshal(stage)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"sheet_id":"`+sheetID.String()+`"`)
}
