package store

import (
	"gorm.io/gorm"

	"lms/models"
)

type courseStore struct {
	db *gorm.DB
}

var _ Courses = (*courseStore)(nil)

func NewCourses(db *gorm.DB) Courses {
	return &courseStore{db: db}
}

func (s *courseStore) List() ([]models.Course, error) {
	var courses []models.Course
	err := s.db.
		Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("id").
		Find(&courses).Error
	if err != nil {
		return nil, translate(err)
	}
	return courses, nil
}

func (s *courseStore) GetByID(id uint) (models.Course, error) {
	var course models.Course
	err := s.db.
		Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&course, id).Error
	if err != nil {
		return models.Course{}, translate(err)
	}
	return course, nil
}

func (s *courseStore) Create(course *models.Course) error {
	return translate(s.db.Create(course).Error)
}

func (s *courseStore) Update(course *models.Course) error {
	return translate(s.db.Save(course).Error)
}
