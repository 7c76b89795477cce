// Package services contains the course/lesson catalog and the progress
// ledger, decoupled from HTTP and from any particular storage backend.
package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"lms/apperr"
	"lms/models"
	"lms/policy"
	"lms/store"
)

type Catalog struct {
	courses store.Courses
	lessons store.Lessons
}

func NewCatalog(courses store.Courses, lessons store.Lessons) *Catalog {
	return &Catalog{courses: courses, lessons: lessons}
}

func (s *Catalog) ListCourses() ([]models.Course, error) {
	courses, err := s.courses.List()
	if err != nil {
		return nil, storageErr(err)
	}
	return courses, nil
}

func (s *Catalog) CreateCourse(identity policy.Identity, title, subtitle string) (models.Course, error) {
	if err := policy.RequireRole(identity, models.RoleInstructor); err != nil {
		return models.Course{}, err
	}
	if strings.TrimSpace(title) == "" {
		return models.Course{}, apperr.New(apperr.InvalidInput, "title is required")
	}

	course := models.Course{
		Title:        title,
		Subtitle:     subtitle,
		InstructorID: identity.UserID,
	}
	if err := s.courses.Create(&course); err != nil {
		return models.Course{}, storageErr(err)
	}
	return course, nil
}

// UpdateCourse applies only the provided fields. A provided empty title is
// rejected; subtitle may be cleared.
func (s *Catalog) UpdateCourse(identity policy.Identity, courseID uint, title, subtitle *string) (models.Course, error) {
	course, err := s.courses.GetByID(courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Course{}, apperr.New(apperr.NotFound, "course not found")
		}
		return models.Course{}, storageErr(err)
	}
	if err := policy.RequireRole(identity, models.RoleInstructor); err != nil {
		return models.Course{}, err
	}
	if err := policy.RequireOwnership(identity, course.InstructorID); err != nil {
		return models.Course{}, err
	}
	if title != nil && strings.TrimSpace(*title) == "" {
		return models.Course{}, apperr.New(apperr.InvalidInput, "title cannot be empty")
	}

	if title != nil {
		course.Title = *title
	}
	if subtitle != nil {
		course.Subtitle = *subtitle
	}
	if err := s.courses.Update(&course); err != nil {
		return models.Course{}, storageErr(err)
	}
	return course, nil
}

// NewProblem is the caller-supplied problem payload; identities are assigned
// here, never taken from the client.
type NewProblem struct {
	Question string
}

func (s *Catalog) CreateLesson(identity policy.Identity, courseID uint, title, notes string, problems []NewProblem) (models.Lesson, error) {
	course, err := s.courses.GetByID(courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Lesson{}, apperr.New(apperr.NotFound, "course not found")
		}
		return models.Lesson{}, storageErr(err)
	}
	if err := policy.RequireRole(identity, models.RoleInstructor); err != nil {
		return models.Lesson{}, err
	}
	if err := policy.RequireOwnership(identity, course.InstructorID); err != nil {
		return models.Lesson{}, err
	}
	if strings.TrimSpace(title) == "" {
		return models.Lesson{}, apperr.New(apperr.InvalidInput, "title is required")
	}

	lesson := models.Lesson{
		CourseID: courseID,
		Title:    title,
		Notes:    notes,
	}
	for i, p := range problems {
		lesson.Problems = append(lesson.Problems, models.Problem{
			ID:       uuid.NewString(),
			Question: p.Question,
			Position: i + 1,
		})
	}

	if err := s.lessons.Create(&lesson); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Lesson{}, apperr.New(apperr.NotFound, "course not found")
		}
		return models.Lesson{}, storageErr(err)
	}
	return lesson, nil
}

func (s *Catalog) ListLessons(courseID uint) ([]models.Lesson, error) {
	lessons, err := s.lessons.ListByCourse(courseID)
	if err != nil {
		return nil, storageErr(err)
	}
	return lessons, nil
}

func (s *Catalog) GetLesson(lessonID uint) (models.Lesson, error) {
	lesson, err := s.lessons.GetByID(lessonID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Lesson{}, apperr.New(apperr.NotFound, "lesson not found")
		}
		return models.Lesson{}, storageErr(err)
	}
	return lesson, nil
}

// storageErr marks unexpected storage failures as retryable for the caller.
func storageErr(err error) error {
	return apperr.Newf(apperr.Unavailable, "storage unavailable: %v", err)
}
