package inmem

import (
	"sort"

	"lms/models"
	"lms/store"
)

type courseStore struct {
	db *DB
}

var _ store.Courses = (*courseStore)(nil)

func NewCourses(db *DB) store.Courses {
	return &courseStore{db: db}
}

// lessonsOf returns the course's lesson sequence ordered by position.
// Callers must hold at least a read lock.
func (db *DB) lessonsOf(courseID uint) []models.Lesson {
	lessons := make([]models.Lesson, 0)
	for _, l := range db.lessons {
		if l.CourseID == courseID {
			lessons = append(lessons, *l)
		}
	}
	sort.Slice(lessons, func(i, j int) bool { return lessons[i].Position < lessons[j].Position })
	return lessons
}

func (s *courseStore) List() ([]models.Course, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	courses := make([]models.Course, 0, len(s.db.courses))
	for _, c := range s.db.courses {
		cp := *c
		cp.Lessons = s.db.lessonsOf(c.ID)
		courses = append(courses, cp)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (s *courseStore) GetByID(id uint) (models.Course, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	c, ok := s.db.courses[id]
	if !ok {
		return models.Course{}, store.ErrNotFound
	}
	cp := *c
	cp.Lessons = s.db.lessonsOf(id)
	return cp, nil
}

func (s *courseStore) Create(course *models.Course) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.courseSeq++
	course.ID = s.db.courseSeq
	cp := *course
	cp.Lessons = nil
	s.db.courses[course.ID] = &cp
	return nil
}

func (s *courseStore) Update(course *models.Course) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.courses[course.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *course
	cp.Lessons = nil
	s.db.courses[course.ID] = &cp
	return nil
}
