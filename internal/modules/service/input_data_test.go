package service

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fieldtrack-io/fieldtrack/internal/config"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
)

// MockInputDataRepo is a mock implementation of InputDataRepo
type MockInputDataRepo struct {
	mock.Mock
}

func (m *MockInputDataRepo) Create(ctx context.Context, f *model.InputDataFile) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockInputDataRepo) LatestPerCategory(ctx context.Context, projectID, wellID uuid.UUID) (map[model.InputDataCategory]*model.InputDataFile, error) {
	args := m.Called(ctx, projectID, wellID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[model.InputDataCategory]*model.InputDataFile), args.Error(1)
}

func TestInputDataService_Upload_InvalidCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewInputDataService(&MockInputDataRepo{}, nil, &config.Config{})

	_, err := svc.Upload(ctx, UploadInputDataInput{
		ProjectID:  uuid.New(),
		WellID:     uuid.New(),
		Category:   model.InputDataCategory("core_samples"),
		FileHeader: &multipart.FileHeader{Filename: "core.csv"},
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestInputDataService_Get_AllCategoriesPresent(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	wellID := uuid.New()

	files := &MockInputDataRepo{}
	files.On("LatestPerCategory", ctx, projectID, wellID).
		Return(map[model.InputDataCategory]*model.InputDataFile{}, nil)

	svc := NewInputDataService(files, nil, &config.Config{})
	got, err := svc.Get(ctx, projectID, wellID)
	require.NoError(t, err)

	// six category keys, all empty when nothing was uploaded
	require.Len(t, got, len(model.InputDataCategories()))
	for _, category := range model.InputDataCategories() {
		ref, ok := got[string(category)]
		require.True(t, ok, "category %s missing", category)
		assert.Empty(t, ref.File)
		assert.Empty(t, ref.Filename)
	}
	files.AssertExpectations(t)
}
