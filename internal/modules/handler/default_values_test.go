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

// MockWellDefaultsService is a mock implementation of WellDefaultsService
type MockWellDefaultsService struct {
	mock.Mock
}

func (m *MockWellDefaultsService) Get(ctx context.Context, wellID uuid.UUID) (*model.WellDefaults, error) {
	args := m.Called(ctx, wellID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WellDefaults), args.Error(1)
}

func (m *MockWellDefaultsService) Set(ctx context.Context, wellID uuid.UUID, values datatypes.JSONMap) (*model.WellDefaults, error) {
	args := m.Called(ctx, wellID, values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WellDefaults), args.Error(1)
}

func setupDefaultValuesRouter(h *DefaultValuesHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/default-values/:well_id", h.GetDefaultValues)
	r.POST("/default-values/:well_id", h.SetDefaultValues)
	return r
}

func TestDefaultValuesHandler_GetDefaultValues(t *testing.T) {
	wellID := uuid.New()

	tests := []struct {
		name           string
		wellParam      string
		setup          func(*MockWellDefaultsService)
		expectedStatus int
		check          func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:      "defaults set, raw map returned",
			wellParam: wellID.String(),
			setup: func(svc *MockWellDefaultsService) {
				svc.On("Get", mock.Anything, wellID).Return(&model.WellDefaults{
					WellID: wellID,
					Values: datatypes.JSONMap{"pump_rate": 90.0, "fluid": "slickwater"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				// the endpoint returns the stored document itself, no envelope
				var got map[string]any
				require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, "slickwater", got["fluid"])
				assert.NotContains(t, got, "status")
			},
		},
		{
			name:      "nothing set yet",
			wellParam: wellID.String(),
			setup: func(svc *MockWellDefaultsService) {
				svc.On("Get", mock.Anything, wellID).Return(nil, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:      "unknown well",
			wellParam: wellID.String(),
			setup: func(svc *MockWellDefaultsService) {
				svc.On("Get", mock.Anything, wellID).Return(nil, service.ErrWellNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "bad well id",
			wellParam:      "not-a-uuid",
			setup:          func(svc *MockWellDefaultsService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockWellDefaultsService{}
			tt.setup(mockService)

			handler := NewDefaultValuesHandler(mockService)
			router := setupDefaultValuesRouter(handler)

			req := httptest.NewRequest("GET", "/default-values/"+tt.wellParam, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.check != nil {
				tt.check(t, w)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestDefaultValuesHandler_SetDefaultValues(t *testing.T) {
	wellID := uuid.New()
	values := datatypes.JSONMap{"pump_rate": 90.0}

	tests := []struct {
		name           string
		body           any
		setup          func(*MockWellDefaultsService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "create or update",
			body: values,
			setup: func(svc *MockWellDefaultsService) {
				svc.On("Set", mock.Anything, wellID, mock.AnythingOfType("datatypes.JSONMap")).
					Return(&model.WellDefaults{WellID: wellID, Values: values}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Well's default value has been updated",
		},
		{
			name:           "empty body rejected",
			body:           datatypes.JSONMap{},
			setup:          func(svc *MockWellDefaultsService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service layer error",
			body: values,
			setup: func(svc *MockWellDefaultsService) {
				svc.On("Set", mock.Anything, wellID, mock.AnythingOfType("datatypes.JSONMap")).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockWellDefaultsService{}
			tt.setup(mockService)

			handler := NewDefaultValuesHandler(mockService)
			router := setupDefaultValuesRouter(handler)

			payload, err := sonic.Marshal(tt.body)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/default-values/"+wellID.String(), bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
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
