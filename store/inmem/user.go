package inmem

import (
	"lms/models"
	"lms/store"
)

type userStore struct {
	db *DB
}

var _ store.Users = (*userStore)(nil)

func NewUsers(db *DB) store.Users {
	return &userStore{db: db}
}

func (s *userStore) Create(user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, u := range s.db.users {
		if u.Email == user.Email {
			return store.ErrDuplicate
		}
	}

	s.db.userSeq++
	user.ID = s.db.userSeq
	cp := *user
	s.db.users[user.ID] = &cp
	return nil
}

func (s *userStore) GetByID(id uint) (models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	if u, ok := s.db.users[id]; ok {
		return *u, nil
	}
	return models.User{}, store.ErrNotFound
}

func (s *userStore) GetByEmail(email string) (models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, u := range s.db.users {
		if u.Email == email {
			return *u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}
