// Package store defines the storage contracts consumed by the services and
// their gorm-backed implementations. Tests substitute the in-memory fakes
// from store/inmem.
package store

import (
	"errors"

	"lms/models"
)

var (
	ErrNotFound  = errors.New("store: record not found")
	ErrDuplicate = errors.New("store: duplicate key")
)

type Users interface {
	// Create fails with ErrDuplicate when the email is already taken.
	Create(user *models.User) error
	GetByID(id uint) (models.User, error)
	GetByEmail(email string) (models.User, error)
}

type Courses interface {
	List() ([]models.Course, error)
	GetByID(id uint) (models.Course, error)
	Create(course *models.Course) error
	Update(course *models.Course) error
}

type Lessons interface {
	ListByCourse(courseID uint) ([]models.Lesson, error)
	GetByID(id uint) (models.Lesson, error)
	// Create inserts the lesson with its problems and appends it to the owning
	// course's sequence. Insert and append commit together or not at all.
	Create(lesson *models.Lesson) error
}

type Progress interface {
	Get(studentID, lessonID uint) (models.Progress, error)
	// Create fails with ErrDuplicate when a record for the
	// (student, lesson) pair already exists.
	Create(progress *models.Progress) error
	Update(progress *models.Progress) error
}

// Stores bundles the four collections so they can be threaded through route
// setup as one explicit dependency.
type Stores struct {
	Users    Users
	Courses  Courses
	Lessons  Lessons
	Progress Progress
}
