package model

import (
	"time"

	"github.com/google/uuid"
)

type JobType string

const (
	JobTypeMicroseismic JobType = "microseismic"
	JobTypeVSP          JobType = "vsp"
	JobTypeFracMonitor  JobType = "frac_monitor"
	JobTypePerfTracking JobType = "perf_tracking"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeMicroseismic, JobTypeVSP, JobTypeFracMonitor, JobTypePerfTracking:
		return true
	}
	return false
}

type JobInfo struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"project_id"`

	JobID   string  `gorm:"type:varchar(50);not null" json:"job_id"`
	JobName string  `gorm:"type:varchar(150);not null" json:"job_name"`
	AfeID   string  `gorm:"type:varchar(50)" json:"afe_id"`
	JobType JobType `gorm:"type:varchar(30);not null" json:"job_type"`

	// Stored with whole-second precision; the API accepts epoch milliseconds.
	JobStartDate time.Time `json:"job_start_date"`
	JobEndDate   time.Time `json:"job_end_date"`

	CountyName string `gorm:"type:varchar(100)" json:"county_name"`
	BasinName  string `gorm:"type:varchar(100)" json:"basin_name"`
	State      string `gorm:"type:varchar(2);not null" json:"state"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (JobInfo) TableName() string { return "job_infos" }

var usStates = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {},
	"DE": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {},
	"IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {},
	"MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {},
	"NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {},
	"TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {},
	"WY": {},
}

func ValidUSState(code string) bool {
	_, ok := usStates[code]
	return ok
}
