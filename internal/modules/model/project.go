package model

import (
	"time"

	"github.com/google/uuid"
)

// Project is the root of the field-operation aggregate. Equipment, Client,
// Pad and JobInfo are one-to-one children; crew entries are one-to-many.
type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectName string    `gorm:"type:varchar(150);not null" json:"project_name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Equipment   *Equipment    `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"equipment,omitempty"`
	Client      *Client       `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"client,omitempty"`
	Pad         *Pad          `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"pad,omitempty"`
	JobInfo     *JobInfo      `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"job_info,omitempty"`
	ProjectCrew []ProjectCrew `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project_crew,omitempty"`
}

func (Project) TableName() string { return "projects" }

// Equipment ids reference the external equipment catalog; they are opaque
// here.
type Equipment struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"project_id"`

	TrailerID     string `gorm:"type:varchar(50)" json:"trailer_id"`
	PowerpackID   string `gorm:"type:varchar(50)" json:"powerpack_id"`
	SourceID      string `gorm:"type:varchar(50)" json:"source_id"`
	AccumulatorID string `gorm:"type:varchar(50)" json:"accumulator_id"`
	HydrophonesID string `gorm:"type:varchar(50)" json:"hydrophones_id"`
	TransducerID  string `gorm:"type:varchar(50)" json:"transducer_id"`
	HotspotID     string `gorm:"type:varchar(50)" json:"hotspot_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Equipment) TableName() string { return "equipment" }

type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"project_id"`

	ClientName         string `gorm:"type:varchar(150);not null" json:"client_name"`
	OperatorName       string `gorm:"type:varchar(150)" json:"operator_name"`
	ServiceCompanyName string `gorm:"type:varchar(150)" json:"service_company_name"`
	WirelineCompany    string `gorm:"type:varchar(150)" json:"wireline_company"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Client) TableName() string { return "clients" }

type Pad struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"project_id"`

	PadName string `gorm:"type:varchar(150);not null" json:"pad_name"`
	// Kept equal to len(Wells) by the aggregate create transaction.
	NumberOfWells int `gorm:"not null;default:0" json:"number_of_wells"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Wells []Well `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"wells,omitempty"`
}

func (Pad) TableName() string { return "pads" }

type ProjectCrew struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`

	CrewName string `gorm:"type:varchar(150);not null" json:"crew_name"`
	Role     string `gorm:"type:varchar(100)" json:"role"`
	Phone    string `gorm:"type:varchar(50)" json:"phone"`
	Email    string `gorm:"type:varchar(150)" json:"email"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ProjectCrew) TableName() string { return "project_crew" }
