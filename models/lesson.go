package models

import "gorm.io/gorm"

type Lesson struct {
	gorm.Model
	CourseID uint   `gorm:"index;not null" json:"courseId"`
	Title    string `gorm:"not null" json:"title"`
	Notes    string `json:"notes"`
	// Position is the lesson's place in the course sequence, assigned in the
	// same transaction that inserts the lesson.
	Position int       `gorm:"not null" json:"position"`
	Problems []Problem `gorm:"foreignKey:LessonID" json:"problems"`
}

// Problem keeps a server-assigned UUID so clients can reference it across
// sessions regardless of ordering changes.
type Problem struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	LessonID uint   `gorm:"index;not null" json:"lessonId"`
	Question string `gorm:"not null" json:"question"`
	Position int    `gorm:"not null" json:"position"`
}
