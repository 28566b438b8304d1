package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fieldtrack-io/fieldtrack/internal/config"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
)

// MockWellRepo is a mock implementation of WellRepo
type MockWellRepo struct {
	mock.Mock
}

func (m *MockWellRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Well, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Well), args.Error(1)
}

func (m *MockWellRepo) GetByWellUUID(ctx context.Context, wellUUID string) (*model.Well, error) {
	args := m.Called(ctx, wellUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Well), args.Error(1)
}

// MockDailyLogRepo is a mock implementation of DailyLogRepo
type MockDailyLogRepo struct {
	mock.Mock
}

func (m *MockDailyLogRepo) CreateBatch(ctx context.Context, logs []model.DailyLog) error {
	args := m.Called(ctx, logs)
	return args.Error(0)
}

func (m *MockDailyLogRepo) ListByWell(ctx context.Context, wellID uuid.UUID) ([]model.DailyLog, error) {
	args := m.Called(ctx, wellID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DailyLog), args.Error(1)
}

func TestDailyLogService_CreateBatch(t *testing.T) {
	ctx := context.Background()
	wellID := uuid.New()
	well := &model.Well{ID: wellID, WellName: "Well 1"}
	entries := []datatypes.JSONMap{
		{"activity": "rig up", "hours": 4.0},
		{"activity": "pumping", "hours": 8.0},
	}

	t.Run("one record per entry", func(t *testing.T) {
		wells := &MockWellRepo{}
		wells.On("GetByID", ctx, wellID).Return(well, nil)
		logs := &MockDailyLogRepo{}
		logs.On("CreateBatch", ctx, mock.MatchedBy(func(records []model.DailyLog) bool {
			return len(records) == 2 && records[0].WellID == wellID && records[1].Payload["activity"] == "pumping"
		})).Return(nil)

		svc := NewDailyLogService(logs, wells, nil, &config.Config{}, zap.NewNop())
		created, err := svc.CreateBatch(ctx, wellID, entries)
		require.NoError(t, err)
		assert.Equal(t, 2, created)
		logs.AssertExpectations(t)
	})

	t.Run("unknown well", func(t *testing.T) {
		wells := &MockWellRepo{}
		wells.On("GetByID", ctx, wellID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewDailyLogService(&MockDailyLogRepo{}, wells, nil, &config.Config{}, zap.NewNop())
		_, err := svc.CreateBatch(ctx, wellID, entries)
		assert.ErrorIs(t, err, ErrWellNotFound)
	})
}

func TestDailyLogService_List(t *testing.T) {
	ctx := context.Background()
	wellID := uuid.New()

	t.Run("returns well logs", func(t *testing.T) {
		wells := &MockWellRepo{}
		wells.On("GetByID", ctx, wellID).Return(&model.Well{ID: wellID}, nil)
		logs := &MockDailyLogRepo{}
		logs.On("ListByWell", ctx, wellID).Return([]model.DailyLog{
			{WellID: wellID, Payload: datatypes.JSONMap{"activity": "rig up"}},
		}, nil)

		svc := NewDailyLogService(logs, wells, nil, &config.Config{}, zap.NewNop())
		got, err := svc.List(ctx, wellID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("unknown well", func(t *testing.T) {
		wells := &MockWellRepo{}
		wells.On("GetByID", ctx, wellID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewDailyLogService(&MockDailyLogRepo{}, wells, nil, &config.Config{}, zap.NewNop())
		_, err := svc.List(ctx, wellID)
		assert.ErrorIs(t, err, ErrWellNotFound)
	})
}
