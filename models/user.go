package models

import "gorm.io/gorm"

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
)

type User struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	// Role is fixed at registration, there is no role-change operation.
	Role string `gorm:"not null;default:student" json:"role"`
}

func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleInstructor
}
