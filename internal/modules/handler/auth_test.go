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

	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, identifier, password string) (*model.User, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) IssueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ResolveToken(ctx context.Context, rawToken string) (*model.User, error) {
	args := m.Called(ctx, rawToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) RevokeToken(ctx context.Context, rawToken string) error {
	args := m.Called(ctx, rawToken)
	return args.Error(0)
}

func (m *MockAuthService) CreateUser(ctx context.Context, username, email, password string) (*model.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthHandler_Login(t *testing.T) {
	userID := uuid.New()
	user := &model.User{ID: userID, Username: "alice", Email: "alice@fieldtrack.io"}

	tests := []struct {
		name           string
		body           any
		setup          func(*MockAuthService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "successful login",
			body: LoginReq{Username: "alice", Password: "secret"},
			setup: func(svc *MockAuthService) {
				svc.On("Authenticate", mock.Anything, "alice", "secret").Return(user, nil)
				svc.On("IssueToken", mock.Anything, userID).Return("ft_abc123", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Login Successful",
		},
		{
			name: "login by email",
			body: LoginReq{Username: "alice@fieldtrack.io", Password: "secret"},
			setup: func(svc *MockAuthService) {
				svc.On("Authenticate", mock.Anything, "alice@fieldtrack.io", "secret").Return(user, nil)
				svc.On("IssueToken", mock.Anything, userID).Return("ft_abc123", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "access_token",
		},
		{
			name: "wrong password",
			body: LoginReq{Username: "alice", Password: "nope"},
			setup: func(svc *MockAuthService) {
				svc.On("Authenticate", mock.Anything, "alice", "nope").Return(nil, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid credentials",
		},
		{
			name:           "missing password",
			body:           map[string]string{"username": "alice"},
			setup:          func(svc *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service layer error",
			body: LoginReq{Username: "alice", Password: "secret"},
			setup: func(svc *MockAuthService) {
				svc.On("Authenticate", mock.Anything, "alice", "secret").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockAuthService{}
			tt.setup(mockService)

			handler := NewAuthHandler(mockService)
			router := setupAuthRouter()
			router.POST("/auth", handler.Login)

			payload, err := sonic.Marshal(tt.body)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/auth", bytes.NewReader(payload))
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

func TestAuthHandler_Me(t *testing.T) {
	user := &model.User{ID: uuid.New(), Username: "alice", Email: "alice@fieldtrack.io", UserUUID: uuid.NewString()}

	mockService := &MockAuthService{}
	handler := NewAuthHandler(mockService)

	router := setupAuthRouter()
	router.GET("/auth", func(c *gin.Context) {
		c.Set("user", user)
		handler.Me(c)
	})

	req := httptest.NewRequest("GET", "/auth", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User details")
	assert.Contains(t, w.Body.String(), "alice")
	// the password hash must never leak through serialization
	assert.NotContains(t, w.Body.String(), "password")
}
