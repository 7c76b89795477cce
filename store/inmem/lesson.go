package inmem

import (
	"lms/models"
	"lms/store"
)

type lessonStore struct {
	db *DB
}

var _ store.Lessons = (*lessonStore)(nil)

func NewLessons(db *DB) store.Lessons {
	return &lessonStore{db: db}
}

func (s *lessonStore) ListByCourse(courseID uint) ([]models.Lesson, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()
	return s.db.lessonsOf(courseID), nil
}

func (s *lessonStore) GetByID(id uint) (models.Lesson, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	l, ok := s.db.lessons[id]
	if !ok {
		return models.Lesson{}, store.ErrNotFound
	}
	return *l, nil
}

func (s *lessonStore) Create(lesson *models.Lesson) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.courses[lesson.CourseID]; !ok {
		return store.ErrNotFound
	}

	// Insert and sequence append happen under one lock, so a reader either
	// sees the lesson with its position or neither.
	lesson.Position = len(s.db.lessonsOf(lesson.CourseID)) + 1
	s.db.lessonSeq++
	lesson.ID = s.db.lessonSeq
	for i := range lesson.Problems {
		lesson.Problems[i].LessonID = lesson.ID
	}
	cp := *lesson
	cp.Problems = append([]models.Problem(nil), lesson.Problems...)
	s.db.lessons[lesson.ID] = &cp
	return nil
}
