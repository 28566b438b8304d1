package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/fieldtrack-io/fieldtrack/internal/config"
	"github.com/fieldtrack-io/fieldtrack/internal/infra/blob"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/model"
	"github.com/fieldtrack-io/fieldtrack/internal/modules/repo"
)

type InputDataService interface {
	Upload(ctx context.Context, in UploadInputDataInput) (*model.InputDataFile, error)
	// Get returns a per-category file reference map for the well.
	Get(ctx context.Context, projectID, wellID uuid.UUID) (map[string]InputDataFileRef, error)
}

type UploadInputDataInput struct {
	ProjectID  uuid.UUID
	WellID     uuid.UUID
	Category   model.InputDataCategory
	FileHeader *multipart.FileHeader
}

type InputDataFileRef struct {
	File     string `json:"file"`
	Filename string `json:"filename"`
}

type inputDataService struct {
	files repo.InputDataRepo
	s3    *blob.S3Deps
	cfg   *config.Config
}

func NewInputDataService(files repo.InputDataRepo, s3 *blob.S3Deps, cfg *config.Config) InputDataService {
	return &inputDataService{files: files, s3: s3, cfg: cfg}
}

func (s *inputDataService) Upload(ctx context.Context, in UploadInputDataInput) (*model.InputDataFile, error) {
	if !in.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	f, err := in.FileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Sniff the real content type; field software lies about extensions.
	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("input-data/%s/%s/%s/%s_%s",
		in.ProjectID, in.WellID, in.Category, uuid.NewString(), in.FileHeader.Filename)

	if err := s.s3.Upload(ctx, key, mtype.String(), f); err != nil {
		return nil, err
	}

	record := &model.InputDataFile{
		ProjectID:   in.ProjectID,
		WellID:      in.WellID,
		Category:    in.Category,
		FileName:    in.FileHeader.Filename,
		StorageKey:  key,
		ContentType: mtype.String(),
		SizeBytes:   in.FileHeader.Size,
	}
	if err := s.files.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *inputDataService) Get(ctx context.Context, projectID, wellID uuid.UUID) (map[string]InputDataFileRef, error) {
	latest, err := s.files.LatestPerCategory(ctx, projectID, wellID)
	if err != nil {
		return nil, err
	}

	expire := time.Duration(s.cfg.S3.PresignExpireSec) * time.Second
	if expire <= 0 {
		expire = 15 * time.Minute
	}

	// Every category is present in the response; ones with no upload carry
	// an empty reference.
	out := make(map[string]InputDataFileRef, len(model.InputDataCategories()))
	for _, category := range model.InputDataCategories() {
		f, ok := latest[category]
		if !ok {
			out[string(category)] = InputDataFileRef{}
			continue
		}
		url, err := s.s3.PresignGet(ctx, f.StorageKey, expire)
		if err != nil {
			return nil, err
		}
		out[string(category)] = InputDataFileRef{File: url, Filename: f.FileName}
	}
	return out, nil
}
