package services

import (
	"testing"

	"github.com/RaG1ng9107/diet-connectivity/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertDetailsGoalOverrides(t *testing.T) {
	db := setupTestDB(t)
	user := seedStudent(t, db)
	svc := NewUserService(db)

	details, err := svc.UpsertDetails(user.ID, DetailsInput{
		Age:          28,
		HeightCm:     175,
		WeightKg:     70,
		CaloriesGoal: f64(1800),
		ProteinGoal:  f64(120),
	})
	require.NoError(t, err)
	require.NotNil(t, details.CaloriesGoal)
	assert.Equal(t, 1800.0, *details.CaloriesGoal)
	assert.Nil(t, details.CarbsGoal)

	// effective goals pick up the stored override
	macroSvc := NewMacroService(db, NewMealService(db, NewFoodService(db), nil))
	goals, err := macroSvc.GoalsFor(user.ID)
	require.NoError(t, err)
	assert.Equal(t, MacroGoals{Calories: 1800, Protein: 120, Carbs: 220, Fat: 60}, goals)

	// sending null goals clears the override back to defaults
	_, err = svc.UpsertDetails(user.ID, DetailsInput{})
	require.NoError(t, err)
	goals, err = macroSvc.GoalsFor(user.ID)
	require.NoError(t, err)
	assert.Equal(t, DefaultGoals, goals)
}

func TestAssignTrainerAndRoster(t *testing.T) {
	db := setupTestDB(t)
	trainer := seedTrainer(t, db, "Roster Coach")
	s1 := seedStudent(t, db)
	s2 := seedStudent(t, db)
	svc := NewUserService(db)

	require.NoError(t, svc.AssignTrainer(s1.ID, &trainer.ID))
	require.NoError(t, svc.AssignTrainer(s2.ID, &trainer.ID))

	roster, err := svc.ListStudentsForTrainer(trainer.ID)
	require.NoError(t, err)
	assert.Len(t, roster, 2)

	ok, err := svc.IsTrainerOf(trainer.ID, s1.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// unlink
	require.NoError(t, svc.AssignTrainer(s1.ID, nil))
	ok, err = svc.IsTrainerOf(trainer.ID, s1.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAssignTrainerValidation(t *testing.T) {
	db := setupTestDB(t)
	student := seedStudent(t, db)
	notATrainer := seedStudent(t, db)
	svc := NewUserService(db)

	err := svc.AssignTrainer(student.ID, &notATrainer.ID)
	assert.ErrorIs(t, err, ErrValidation)

	trainer := seedTrainer(t, db, "Orphan Coach")
	err = svc.AssignTrainer(9999, &trainer.ID)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestSetDisabledBlocksAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	authSvc := NewAuthService(db)
	userSvc := NewUserService(db)

	user, err := authSvc.Register("Student", "disable-me@test.local", "password123", models.RoleStudent)
	require.NoError(t, err)

	_, err = authSvc.Authenticate("disable-me@test.local", "password123")
	require.NoError(t, err)

	require.NoError(t, userSvc.SetDisabled(user.ID, true))
	_, err = authSvc.Authenticate("disable-me@test.local", "password123")
	assert.Error(t, err)
}

func TestRegisterCreatesDetailsForStudents(t *testing.T) {
	db := setupTestDB(t)
	authSvc := NewAuthService(db)

	student, err := authSvc.Register("S", "s@test.local", "password123", models.RoleStudent)
	require.NoError(t, err)
	var details models.StudentDetails
	assert.NoError(t, db.Where("user_id = ?", student.ID).First(&details).Error)

	trainer, err := authSvc.Register("T", "t@test.local", "password123", models.RoleTrainer)
	require.NoError(t, err)
	err = db.Where("user_id = ?", trainer.ID).First(&details).Error
	assert.Error(t, err)

	_, err = authSvc.Register("X", "x@test.local", "password123", "superuser")
	assert.ErrorIs(t, err, ErrValidation)
}
