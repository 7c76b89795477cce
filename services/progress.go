package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"lms/apperr"
	"lms/models"
	"lms/store"
)

// Ledger owns the per-student, per-lesson progress records. Records are
// created lazily on the first mutation; reads of an absent key return a
// synthesized zero view and never persist anything.
//
// Each mutation is a read-check-write sequence, serialized per
// (student, lesson) key by a keyed mutex. The store's unique index on the
// pair backs this up across processes: a lost race on create surfaces as
// store.ErrDuplicate and is resolved by retrying against the existing record.
type Ledger struct {
	progress store.Progress
	lessons  store.Lessons

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLedger(progress store.Progress, lessons store.Lessons) *Ledger {
	return &Ledger{
		progress: progress,
		lessons:  lessons,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (l *Ledger) keyLock(studentID, lessonID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := fmt.Sprintf("%d/%d", studentID, lessonID)
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}

func (l *Ledger) Get(studentID, lessonID uint) (models.Progress, error) {
	progress, err := l.progress.Get(studentID, lessonID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.ZeroProgress(studentID, lessonID), nil
		}
		return models.Progress{}, storageErr(err)
	}
	return progress, nil
}

// ToggleNotes flips the notes-completed flag. Deliberately a toggle, not a
// set: two consecutive calls return the flag to its prior value.
func (l *Ledger) ToggleNotes(studentID, lessonID, courseID uint) (models.Progress, error) {
	lock := l.keyLock(studentID, lessonID)
	lock.Lock()
	defer lock.Unlock()

	return l.upsert(studentID, lessonID, courseID, func(p *models.Progress, absent bool) bool {
		if absent {
			p.NotesCompleted = true
			return true
		}
		p.NotesCompleted = !p.NotesCompleted
		return true
	})
}

// MarkProblem adds problemID to the solved set. Idempotent: a second call
// with the same ID performs no write. There is no unsolve operation.
func (l *Ledger) MarkProblem(studentID, lessonID, courseID uint, problemID string) (models.Progress, error) {
	if _, err := l.lessons.GetByID(lessonID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Progress{}, apperr.New(apperr.NotFound, "lesson not found")
		}
		return models.Progress{}, storageErr(err)
	}

	problemID = strings.TrimSpace(problemID)

	lock := l.keyLock(studentID, lessonID)
	lock.Lock()
	defer lock.Unlock()

	return l.upsert(studentID, lessonID, courseID, func(p *models.Progress, absent bool) bool {
		if p.HasSolved(problemID) {
			return false
		}
		p.SolvedProblems = append(p.SolvedProblems, problemID)
		return true
	})
}

// AddTime accumulates delta seconds, clamped at a zero floor. The clamp is
// idempotent: once at zero, further negative deltas keep it at zero.
func (l *Ledger) AddTime(studentID, lessonID, courseID uint, delta int64) (models.Progress, error) {
	lock := l.keyLock(studentID, lessonID)
	lock.Lock()
	defer lock.Unlock()

	return l.upsert(studentID, lessonID, courseID, func(p *models.Progress, absent bool) bool {
		total := p.TimeSpent + delta
		if total < 0 {
			total = 0
		}
		p.TimeSpent = total
		return true
	})
}

// upsert runs mutate against the stored record, creating it first when the
// key is absent. mutate reports whether a write is needed. A duplicate-key
// failure on create means another writer won the absent→present transition;
// the mutation is then retried against the winner's record so no update is
// dropped.
func (l *Ledger) upsert(studentID, lessonID, courseID uint, mutate func(p *models.Progress, absent bool) bool) (models.Progress, error) {
	progress, err := l.progress.Get(studentID, lessonID)
	switch {
	case err == nil:
		if !mutate(&progress, false) {
			return progress, nil
		}
		if err := l.progress.Update(&progress); err != nil {
			return models.Progress{}, storageErr(err)
		}
		return progress, nil

	case errors.Is(err, store.ErrNotFound):
		progress = models.ZeroProgress(studentID, lessonID)
		progress.CourseID = courseID
		if !mutate(&progress, true) {
			return progress, nil
		}
		err := l.progress.Create(&progress)
		if errors.Is(err, store.ErrDuplicate) {
			existing, gerr := l.progress.Get(studentID, lessonID)
			if gerr != nil {
				return models.Progress{}, storageErr(gerr)
			}
			if !mutate(&existing, false) {
				return existing, nil
			}
			if uerr := l.progress.Update(&existing); uerr != nil {
				return models.Progress{}, storageErr(uerr)
			}
			return existing, nil
		}
		if err != nil {
			return models.Progress{}, storageErr(err)
		}
		return progress, nil

	default:
		return models.Progress{}, storageErr(err)
	}
}
