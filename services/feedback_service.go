package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RaG1ng9107/diet-connectivity/models"

	"gorm.io/gorm"
)

type FeedbackService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewFeedbackService(db *gorm.DB, hub *RealtimeHub) *FeedbackService {
	return &FeedbackService{db: db, hub: hub}
}

// AddFeedback records a trainer message for a student. The trainer must be
// the student's assigned trainer; the trainer name is snapshotted so the
// item renders without a join.
func (s *FeedbackService) AddFeedback(trainerID uint, studentID uint, message string) (*models.TrainerFeedback, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}

	var details models.StudentDetails
	err := s.db.Where("user_id = ?", studentID).First(&details).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if details.TrainerID == nil || *details.TrainerID != trainerID {
		return nil, ErrNotLinked
	}

	var trainer models.User
	if err := s.db.First(&trainer, trainerID).Error; err != nil {
		return nil, err
	}

	fb := &models.TrainerFeedback{
		TrainerID:   trainerID,
		TrainerName: trainer.Name,
		StudentID:   studentID,
		Message:     message,
	}
	if err := s.db.Create(fb).Error; err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast("feedback.created", fb, studentID)
	}
	return fb, nil
}

// ListForStudent returns a student's feedback, newest first. Feedback is
// append-only; there is no update or delete path.
func (s *FeedbackService) ListForStudent(studentID uint) ([]models.TrainerFeedback, error) {
	var items []models.TrainerFeedback
	err := s.db.
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
