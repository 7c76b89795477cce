package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Progress is the per-student, per-lesson tracking record. At most one row
// exists per (student, lesson) pair; the composite unique index is the hard
// invariant every storage backend must enforce.
type Progress struct {
	gorm.Model
	StudentID uint `gorm:"uniqueIndex:idx_progress_student_lesson;not null" json:"studentId"`
	LessonID  uint `gorm:"uniqueIndex:idx_progress_student_lesson;not null" json:"lessonId"`
	// CourseID is denormalized for convenience and is not authoritative.
	CourseID       uint                        `gorm:"index" json:"courseId"`
	NotesCompleted bool                        `gorm:"not null;default:false" json:"notesCompleted"`
	SolvedProblems datatypes.JSONSlice[string] `json:"solvedProblems"`
	TimeSpent      int64                       `gorm:"not null;default:0" json:"timeSpent"`
}

// ZeroProgress is the synthesized view returned for a pair that has no
// stored record yet. It is never persisted.
func ZeroProgress(studentID, lessonID uint) Progress {
	return Progress{
		StudentID:      studentID,
		LessonID:       lessonID,
		SolvedProblems: datatypes.JSONSlice[string]{},
	}
}

func (p *Progress) HasSolved(problemID string) bool {
	for _, id := range p.SolvedProblems {
		if id == problemID {
			return true
		}
	}
	return false
}
