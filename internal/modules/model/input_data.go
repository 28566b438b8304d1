package model

import (
	"time"

	"github.com/google/uuid"
)

type InputDataCategory string

const (
	CategoryHydrophone  InputDataCategory = "hydrophone"
	CategoryPumpingData InputDataCategory = "pumping_data"
	CategoryPressure    InputDataCategory = "pressure"
	CategorySurvey      InputDataCategory = "survey"
	CategoryGammaRay    InputDataCategory = "gamma_ray"
	CategoryMudLog      InputDataCategory = "mud_log"
)

func InputDataCategories() []InputDataCategory {
	return []InputDataCategory{
		CategoryHydrophone,
		CategoryPumpingData,
		CategoryPressure,
		CategorySurvey,
		CategoryGammaRay,
		CategoryMudLog,
	}
}

func (c InputDataCategory) Valid() bool {
	for _, known := range InputDataCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// InputDataFile is a reference to an uploaded input file in blob storage.
// Reads resolve the newest row per (project, well, category).
type InputDataFile struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index:idx_input_data_scope,priority:1" json:"project_id"`
	WellID    uuid.UUID `gorm:"type:uuid;not null;index:idx_input_data_scope,priority:2" json:"well_id"`

	Category    InputDataCategory `gorm:"type:varchar(30);not null;index:idx_input_data_scope,priority:3" json:"category"`
	FileName    string            `gorm:"type:varchar(255);not null" json:"file_name"`
	StorageKey  string            `gorm:"type:text;not null" json:"-"`
	ContentType string            `gorm:"type:varchar(100)" json:"content_type"`
	SizeBytes   int64             `gorm:"not null;default:0" json:"size_bytes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (InputDataFile) TableName() string { return "input_data_files" }
