package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title        string   `gorm:"not null" json:"title"`
	Subtitle     string   `json:"subtitle"`
	InstructorID uint     `gorm:"index;not null" json:"instructorId"`
	Lessons      []Lesson `gorm:"foreignKey:CourseID" json:"lessons,omitempty"`
}
