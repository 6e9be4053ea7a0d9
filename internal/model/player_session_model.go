package model

import (
	"time"

	"github.com/google/uuid"
)

type PlayerSession struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlayerID int64     `gorm:"column:player_id;uniqueIndex;not null"`
	Phase    string    `gorm:"type:varchar(50);not null;default:'name_pending'"`

	DisplayName        *string `gorm:"type:varchar(255);uniqueIndex"`
	PendingDisplayName *string `gorm:"type:varchar(255)"`

	CurrentStepID     int `gorm:"not null;default:0"`
	CurrentQuestionID *int
	Navigating        bool `gorm:"not null;default:false"`

	HelpsUsed        int `gorm:"not null;default:0"`
	StartTime        *time.Time
	TotalTimeSeconds *int64

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (PlayerSession) TableName() string {
	return "player_sessions"
}
