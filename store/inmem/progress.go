package inmem

import (
	"lms/models"
	"lms/store"
)

type progressStore struct {
	db *DB
}

var _ store.Progress = (*progressStore)(nil)

func NewProgress(db *DB) store.Progress {
	return &progressStore{db: db}
}

func (s *progressStore) Get(studentID, lessonID uint) (models.Progress, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	p, ok := s.db.progress[progressKey{studentID, lessonID}]
	if !ok {
		return models.Progress{}, store.ErrNotFound
	}
	cp := *p
	cp.SolvedProblems = append(cp.SolvedProblems[:0:0], p.SolvedProblems...)
	return cp, nil
}

func (s *progressStore) Create(progress *models.Progress) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	key := progressKey{progress.StudentID, progress.LessonID}
	if _, ok := s.db.progress[key]; ok {
		return store.ErrDuplicate
	}

	s.db.progressSeq++
	progress.ID = s.db.progressSeq
	cp := *progress
	cp.SolvedProblems = append(cp.SolvedProblems[:0:0], progress.SolvedProblems...)
	s.db.progress[key] = &cp
	return nil
}

func (s *progressStore) Update(progress *models.Progress) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	key := progressKey{progress.StudentID, progress.LessonID}
	if _, ok := s.db.progress[key]; !ok {
		return store.ErrNotFound
	}
	cp := *progress
	cp.SolvedProblems = append(cp.SolvedProblems[:0:0], progress.SolvedProblems...)
	s.db.progress[key] = &cp
	return nil
}
