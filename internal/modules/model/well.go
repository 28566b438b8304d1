package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Well struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PadID uuid.UUID `gorm:"type:uuid;not null;index" json:"pad_id"`

	WellName string `gorm:"type:varchar(150);not null" json:"well_name"`
	// External identifier used by field software; stage listing keys on it.
	WellUUID string `gorm:"type:varchar(36);not null;uniqueIndex" json:"well_uuid"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	DailyLogs []DailyLog           `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Stages    []TrackingSheetStage `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Well) TableName() string { return "wells" }

// DailyLog is a single logged operational event. The payload is schemaless,
// field crews log whatever the day produced.
type DailyLog struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WellID uuid.UUID `gorm:"type:uuid;not null;index" json:"well_id"`

	Payload datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"payload"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DailyLog) TableName() string { return "daily_logs" }

// WellDefaults is the per-well baseline configuration document. At most one
// row per well; writes upsert.
type WellDefaults struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WellID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"well_id"`

	Values datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"values"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WellDefaults) TableName() string { return "well_defaults" }

// TrackingSheetStage is one stage of a well's tracking sheet. The row id is
// the sheet_id clients use to fetch a single stage.
type TrackingSheetStage struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"sheet_id"`
	WellID uuid.UUID `gorm:"type:uuid;not null;index" json:"well_id"`

	StageNumber int               `gorm:"not null" json:"stage_number"`
	Data        datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"data"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TrackingSheetStage) TableName() string { return "tracking_sheet_stages" }
