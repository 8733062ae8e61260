package models

import (
	"gorm.io/gorm"
)

const (
	RoleStudent = "student"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"type:varchar(16);not null;default:student" json:"role"`
	Disabled bool   `json:"disabled"`
}

func ValidRole(r string) bool {
	return r == RoleStudent || r == RoleTrainer || r == RoleAdmin
}
