package services

import (
	"errors"
	"fmt"

	"github.com/RaG1ng9107/diet-connectivity/models"
	"github.com/RaG1ng9107/diet-connectivity/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func (s *UserService) GetProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := s.db.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return nil, errors.New("user not found or disabled")
	}

	out := map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	}

	var details models.StudentDetails
	if err := s.db.Where("user_id = ?", user.ID).First(&details).Error; err == nil {
		out["details"] = details
		if bmi, err := utils.CalculateBMI(details.HeightCm, details.WeightKg); err == nil {
			out["bmi"] = bmi
			out["bmi_category"] = utils.BMICategory(bmi)
		}
	}
	return out, nil
}

type DetailsInput struct {
	Age               int     `json:"age"`
	HeightCm          float64 `json:"height_cm"`
	WeightKg          float64 `json:"weight_kg"`
	DietaryPreference string  `json:"dietary_preference"`
	PersonalGoal      string  `json:"personal_goal"`

	CaloriesGoal *float64 `json:"calories_goal"`
	ProteinGoal  *float64 `json:"protein_goal"`
	CarbsGoal    *float64 `json:"carbs_goal"`
	FatGoal      *float64 `json:"fat_goal"`
}

// UpsertDetails writes the student's profile row. Non-zero scalar fields
// replace the stored value; goal pointers are written as sent, so a null
// clears the override back to the platform default.
func (s *UserService) UpsertDetails(userID uint, in DetailsInput) (*models.StudentDetails, error) {
	var details models.StudentDetails
	err := s.db.Where("user_id = ?", userID).First(&details).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	details.UserID = userID

	if in.Age > 0 {
		details.Age = in.Age
	}
	if in.HeightCm > 0 {
		details.HeightCm = in.HeightCm
	}
	if in.WeightKg > 0 {
		details.WeightKg = in.WeightKg
	}
	if in.DietaryPreference != "" {
		details.DietaryPreference = in.DietaryPreference
	}
	if in.PersonalGoal != "" {
		details.PersonalGoal = in.PersonalGoal
	}
	details.CaloriesGoal = in.CaloriesGoal
	details.ProteinGoal = in.ProteinGoal
	details.CarbsGoal = in.CarbsGoal
	details.FatGoal = in.FatGoal

	if err := s.db.Save(&details).Error; err != nil {
		return nil, err
	}
	return &details, nil
}

// AssignTrainer links a student to a trainer, or unlinks with nil.
func (s *UserService) AssignTrainer(studentID uint, trainerID *uint) error {
	if trainerID != nil {
		var trainer models.User
		if err := s.db.Where("id = ? AND role = ?", *trainerID, models.RoleTrainer).First(&trainer).Error; err != nil {
			return fmt.Errorf("%w: trainer %d", ErrValidation, *trainerID)
		}
	}
	res := s.db.Model(&models.StudentDetails{}).
		Where("user_id = ?", studentID).
		Update("trainer_id", trainerID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// ListStudentsForTrainer returns the trainer's roster with profile details.
func (s *UserService) ListStudentsForTrainer(trainerID uint) ([]map[string]interface{}, error) {
	var rows []models.StudentDetails
	err := s.db.
		Where("trainer_id = ?", trainerID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]map[string]interface{}, 0, len(rows))
	for _, d := range rows {
		var user models.User
		if err := s.db.First(&user, d.UserID).Error; err != nil {
			continue
		}
		out = append(out, map[string]interface{}{
			"id":      user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"details": d,
		})
	}
	return out, nil
}

// IsTrainerOf reports whether the student is on the trainer's roster.
func (s *UserService) IsTrainerOf(trainerID, studentID uint) (bool, error) {
	var details models.StudentDetails
	err := s.db.Where("user_id = ?", studentID).First(&details).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrStudentNotFound
		}
		return false, err
	}
	return details.TrainerID != nil && *details.TrainerID == trainerID, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at ASC").Find(&users).Error
	return users, err
}

// SetDisabled flips the account flag; disabled users cannot authenticate.
func (s *UserService) SetDisabled(userID uint, disabled bool) error {
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Update("disabled", disabled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("user not found")
	}
	return nil
}
