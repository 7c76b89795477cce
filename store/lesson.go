package store

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lms/models"
)

type lessonStore struct {
	db *gorm.DB
}

var _ Lessons = (*lessonStore)(nil)

func NewLessons(db *gorm.DB) Lessons {
	return &lessonStore{db: db}
}

func (s *lessonStore) ListByCourse(courseID uint) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := s.db.
		Preload("Problems", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("course_id = ?", courseID).
		Order("position").
		Find(&lessons).Error
	if err != nil {
		return nil, translate(err)
	}
	return lessons, nil
}

func (s *lessonStore) GetByID(id uint) (models.Lesson, error) {
	var lesson models.Lesson
	err := s.db.
		Preload("Problems", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&lesson, id).Error
	if err != nil {
		return models.Lesson{}, translate(err)
	}
	return lesson, nil
}

func (s *lessonStore) Create(lesson *models.Lesson) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Lock the course row so concurrent appends serialize and the next
		// position is computed against committed state.
		var course models.Course
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&course, lesson.CourseID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Lesson{}).
			Where("course_id = ?", lesson.CourseID).
			Count(&count).Error; err != nil {
			return err
		}
		lesson.Position = int(count) + 1

		return tx.Create(lesson).Error
	})
	return translate(err)
}
