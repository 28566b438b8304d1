package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"-"`
	Username string    `gorm:"type:varchar(50);not null" json:"username"`
	Email    string    `gorm:"type:varchar(150);not null" json:"email"`
	// Argon2id PHC string, never the plaintext.
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	UserUUID string `gorm:"type:varchar(36);not null" json:"user_uuid"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// UserProject associates a user with a project. A project can be shared with
// several users; project listing goes through this table.
type UserProject struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_project,priority:1" json:"user_id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_project,priority:2" json:"project_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User    *User    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (UserProject) TableName() string { return "project_user" }
