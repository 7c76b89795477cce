package store

import (
	"errors"

	"gorm.io/gorm"

	"lms/models"
)

type userStore struct {
	db *gorm.DB
}

var _ Users = (*userStore)(nil)

func NewUsers(db *gorm.DB) Users {
	return &userStore{db: db}
}

func (s *userStore) Create(user *models.User) error {
	return translate(s.db.Create(user).Error)
}

func (s *userStore) GetByID(id uint) (models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

func (s *userStore) GetByEmail(email string) (models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, translate(err)
	}
	return user, nil
}

// translate maps gorm errors onto the store sentinels. Requires the gorm
// session to be opened with TranslateError so driver-specific unique
// violations surface as gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
