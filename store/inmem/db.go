// Package inmem is an in-memory storage backend used by tests. It enforces
// the same invariants as the gorm backend: unique user emails, a unique
// (student, lesson) progress key, and an atomic lesson insert + course
// sequence append.
package inmem

import (
	"sync"

	"lms/models"
	"lms/store"
)

type DB struct {
	mu sync.RWMutex

	userSeq     uint
	courseSeq   uint
	lessonSeq   uint
	progressSeq uint

	users    map[uint]*models.User
	courses  map[uint]*models.Course
	lessons  map[uint]*models.Lesson
	progress map[progressKey]*models.Progress
}

type progressKey struct {
	studentID uint
	lessonID  uint
}

func NewDB() *DB {
	return &DB{
		users:    make(map[uint]*models.User),
		courses:  make(map[uint]*models.Course),
		lessons:  make(map[uint]*models.Lesson),
		progress: make(map[progressKey]*models.Progress),
	}
}

// NewStores wires a fresh in-memory database into the store bundle.
func NewStores() store.Stores {
	db := NewDB()
	return store.Stores{
		Users:    NewUsers(db),
		Courses:  NewCourses(db),
		Lessons:  NewLessons(db),
		Progress: NewProgress(db),
	}
}
