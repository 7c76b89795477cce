package store

import (
	"gorm.io/gorm"

	"lms/models"
)

type progressStore struct {
	db *gorm.DB
}

var _ Progress = (*progressStore)(nil)

func NewProgress(db *gorm.DB) Progress {
	return &progressStore{db: db}
}

func (s *progressStore) Get(studentID, lessonID uint) (models.Progress, error) {
	var progress models.Progress
	err := s.db.
		Where("student_id = ? AND lesson_id = ?", studentID, lessonID).
		First(&progress).Error
	if err != nil {
		return models.Progress{}, translate(err)
	}
	return progress, nil
}

func (s *progressStore) Create(progress *models.Progress) error {
	// The composite unique index on (student_id, lesson_id) turns a racing
	// second insert into ErrDuplicate rather than a second record.
	return translate(s.db.Create(progress).Error)
}

func (s *progressStore) Update(progress *models.Progress) error {
	return translate(s.db.Save(progress).Error)
}
