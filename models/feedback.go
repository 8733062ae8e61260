package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrainerFeedback is written by a trainer for one of their students.
// Read-only to the student; never updated or deleted.
type TrainerFeedback struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	TrainerID   uint      `gorm:"index;not null" json:"trainer_id"`
	TrainerName string    `json:"trainer_name"`
	StudentID   uint      `gorm:"index;not null" json:"student_id"`
	Message     string    `gorm:"not null" json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

func (f *TrainerFeedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
