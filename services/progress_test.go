package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/apperr"
	"lms/models"
	"lms/store"
	"lms/store/inmem"
)

// countingProgress wraps a progress store and counts writes, so tests can
// assert that idempotent calls perform none.
type countingProgress struct {
	store.Progress
	creates int
	updates int
}

func (c *countingProgress) Create(p *models.Progress) error {
	c.creates++
	return c.Progress.Create(p)
}

func (c *countingProgress) Update(p *models.Progress) error {
	c.updates++
	return c.Progress.Update(p)
}

func newTestLedger(t *testing.T) (*Ledger, *countingProgress, models.Lesson) {
	t.Helper()

	stores := inmem.NewStores()

	course := models.Course{Title: "Algorithms", InstructorID: 1}
	require.NoError(t, stores.Courses.Create(&course))

	lesson := models.Lesson{CourseID: course.ID, Title: "Sorting"}
	require.NoError(t, stores.Lessons.Create(&lesson))

	counting := &countingProgress{Progress: stores.Progress}
	return NewLedger(counting, stores.Lessons), counting, lesson
}

func TestGetReturnsZeroViewWithoutPersisting(t *testing.T) {
	ledger, counting, lesson := newTestLedger(t)

	progress, err := ledger.Get(42, lesson.ID)
	require.NoError(t, err)

	assert.False(t, progress.NotesCompleted)
	assert.Empty(t, progress.SolvedProblems)
	assert.EqualValues(t, 0, progress.TimeSpent)
	assert.EqualValues(t, 42, progress.StudentID)
	assert.EqualValues(t, lesson.ID, progress.LessonID)

	// Reading never creates a record.
	assert.Equal(t, 0, counting.creates)
	_, err = counting.Progress.Get(42, lesson.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestToggleNotesIsAnInvolution(t *testing.T) {
	ledger, _, lesson := newTestLedger(t)

	p1, err := ledger.ToggleNotes(42, lesson.ID, lesson.CourseID)
	require.NoError(t, err)
	assert.True(t, p1.NotesCompleted)

	p2, err := ledger.ToggleNotes(42, lesson.ID, lesson.CourseID)
	require.NoError(t, err)
	assert.False(t, p2.NotesCompleted)

	p3, err := ledger.ToggleNotes(42, lesson.ID, lesson.CourseID)
	require.NoError(t, err)
	assert.True(t, p3.NotesCompleted)
}

func TestMarkProblemIsIdempotent(t *testing.T) {
	ledger, counting, lesson := newTestLedger(t)

	p1, err := ledger.MarkProblem(42, lesson.ID, lesson.CourseID, "prob-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"prob-1"}, []string(p1.SolvedProblems))
	assert.Equal(t, 1, counting.creates)

	// Second call with the same problem: exactly one copy, no write.
	p2, err := ledger.MarkProblem(42, lesson.ID, lesson.CourseID, "prob-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"prob-1"}, []string(p2.SolvedProblems))
	assert.Equal(t, 1, counting.creates)
	assert.Equal(t, 0, counting.updates)

	p3, err := ledger.MarkProblem(42, lesson.ID, lesson.CourseID, "prob-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"prob-1", "prob-2"}, []string(p3.SolvedProblems))
}

func TestMarkProblemUnknownLesson(t *testing.T) {
	ledger, counting, _ := newTestLedger(t)

	_, err := ledger.MarkProblem(42, 999, 1, "prob-1")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Equal(t, 0, counting.creates)
}

func TestAddTimeAccumulates(t *testing.T) {
	ledger, _, lesson := newTestLedger(t)

	_, err := ledger.AddTime(42, lesson.ID, lesson.CourseID, 30)
	require.NoError(t, err)
	p, err := ledger.AddTime(42, lesson.ID, lesson.CourseID, 45)
	require.NoError(t, err)
	assert.EqualValues(t, 75, p.TimeSpent)
}

func TestAddTimeClampsAtZeroFloor(t *testing.T) {
	ledger, _, lesson := newTestLedger(t)

	_, err := ledger.AddTime(42, lesson.ID, lesson.CourseID, 5)
	require.NoError(t, err)

	p, err := ledger.AddTime(42, lesson.ID, lesson.CourseID, -1000)
	require.NoError(t, err)
	assert.EqualValues(t, 0, p.TimeSpent)

	// The clamp is idempotent at the floor.
	p, err = ledger.AddTime(42, lesson.ID, lesson.CourseID, -10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, p.TimeSpent)

	p, err = ledger.AddTime(42, lesson.ID, lesson.CourseID, 7)
	require.NoError(t, err)
	assert.EqualValues(t, 7, p.TimeSpent)
}

func TestAddTimeNegativeFirstTouch(t *testing.T) {
	ledger, _, lesson := newTestLedger(t)

	p, err := ledger.AddTime(42, lesson.ID, lesson.CourseID, -30)
	require.NoError(t, err)
	assert.EqualValues(t, 0, p.TimeSpent)
}

func TestConcurrentMarkProblemLosesNoUpdate(t *testing.T) {
	ledger, counting, lesson := newTestLedger(t)

	var wg sync.WaitGroup
	for _, id := range []string{"prob-1", "prob-2"} {
		wg.Add(1)
		go func(problemID string) {
			defer wg.Done()
			_, err := ledger.MarkProblem(42, lesson.ID, lesson.CourseID, problemID)
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	p, err := ledger.Get(42, lesson.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"prob-1", "prob-2"}, []string(p.SolvedProblems))
	assert.Equal(t, 1, counting.creates)
}

func TestConcurrentAddTime(t *testing.T) {
	ledger, _, lesson := newTestLedger(t)

	const workers = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledger.AddTime(42, lesson.ID, lesson.CourseID, 2)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	p, err := ledger.Get(42, lesson.ID)
	require.NoError(t, err)
	assert.EqualValues(t, workers*2, p.TimeSpent)
}
