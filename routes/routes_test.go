package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/config"
	"lms/routes"
	"lms/store/inmem"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	cfg := &config.Config{JWTSecret: "test-secret"}
	routes.SetupRoutes(app, inmem.NewStores(), cfg)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonData)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	result := make(map[string]interface{})
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &result))
	} else if len(raw) > 0 {
		result["_list"] = mustUnmarshalList(t, raw)
	}
	return resp.StatusCode, result
}

func mustUnmarshalList(t *testing.T, raw []byte) []interface{} {
	t.Helper()
	var list []interface{}
	require.NoError(t, json.Unmarshal(raw, &list))
	return list
}

func register(t *testing.T, app *fiber.App, name, email, role string) string {
	t.Helper()
	status, result := doJSON(t, app, "POST", "/api/auth/register", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "password",
		"role":     role,
	})
	require.Equal(t, fiber.StatusCreated, status)
	token, ok := result["token"].(string)
	require.True(t, ok, "register response must carry a token")
	return token
}

func TestRegisterAndLogin(t *testing.T) {
	app := newTestApp()

	register(t, app, "Alice Instructor", "alice@teach.com", "instructor")

	status, result := doJSON(t, app, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "alice@teach.com",
		"password": "password",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, result["token"])
	user := result["user"].(map[string]interface{})
	assert.Equal(t, "instructor", user["role"])

	status, _ = doJSON(t, app, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "alice@teach.com",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestGetProfile(t *testing.T) {
	app := newTestApp()
	token := register(t, app, "Bob Student", "bob@student.com", "student")

	status, result := doJSON(t, app, "GET", "/api/user/profile", token, nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "bob@student.com", result["email"])
	assert.Equal(t, "student", result["role"])
}

func TestCourseListIsPublic(t *testing.T) {
	app := newTestApp()

	status, _ := doJSON(t, app, "GET", "/api/courses", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app := newTestApp()

	status, _ := doJSON(t, app, "GET", "/api/lessons/1", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	req := httptest.NewRequest("GET", "/api/lessons/1", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestStudentCannotCreateCourse(t *testing.T) {
	app := newTestApp()
	studentToken := register(t, app, "Bob Student", "bob@student.com", "student")

	status, _ := doJSON(t, app, "POST", "/api/courses", studentToken, map[string]interface{}{
		"title": "Sneaky course",
	})
	assert.Equal(t, fiber.StatusForbidden, status)

	status, result := doJSON(t, app, "GET", "/api/courses", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, result["_list"])
}

// Instructor creates a course and a lesson with two problems, then a student
// marks the first problem and reads their progress back.
func TestMarkProblemScenario(t *testing.T) {
	app := newTestApp()
	instructorToken := register(t, app, "Alice Instructor", "alice@teach.com", "instructor")
	studentToken := register(t, app, "Bob Student", "bob@student.com", "student")

	status, course := doJSON(t, app, "POST", "/api/courses", instructorToken, map[string]interface{}{
		"title": "Algorithms",
	})
	require.Equal(t, fiber.StatusCreated, status)
	courseID := course["ID"].(float64)

	status, lesson := doJSON(t, app, "POST", "/api/lessons", instructorToken, map[string]interface{}{
		"courseId": courseID,
		"title":    "Sorting",
		"problems": []map[string]interface{}{
			{"question": "Implement bubble sort"},
			{"question": "Why is merge sort O(n log n)?"},
		},
	})
	require.Equal(t, fiber.StatusCreated, status)
	lessonID := lesson["ID"].(float64)
	problems := lesson["problems"].([]interface{})
	require.Len(t, problems, 2)
	firstProblemID := problems[0].(map[string]interface{})["id"].(string)

	status, progress := doJSON(t, app, "POST", "/api/progress/problem", studentToken, map[string]interface{}{
		"lessonId":  lessonID,
		"courseId":  courseID,
		"problemId": firstProblemID,
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []interface{}{firstProblemID}, progress["solvedProblems"])

	status, progress = doJSON(t, app, "GET", fmt.Sprintf("/api/progress/%.0f", lessonID), studentToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []interface{}{firstProblemID}, progress["solvedProblems"])
	assert.Equal(t, false, progress["notesCompleted"])
	assert.Equal(t, float64(0), progress["timeSpent"])
}

func TestAddTimeScenario(t *testing.T) {
	app := newTestApp()
	instructorToken := register(t, app, "Alice Instructor", "alice@teach.com", "instructor")
	studentToken := register(t, app, "Bob Student", "bob@student.com", "student")

	_, course := doJSON(t, app, "POST", "/api/courses", instructorToken, map[string]interface{}{
		"title": "Algorithms",
	})
	courseID := course["ID"].(float64)
	_, lesson := doJSON(t, app, "POST", "/api/lessons", instructorToken, map[string]interface{}{
		"courseId": courseID,
		"title":    "Sorting",
	})
	lessonID := lesson["ID"].(float64)

	status, _ := doJSON(t, app, "POST", "/api/progress/time", studentToken, map[string]interface{}{
		"lessonId": lessonID,
		"courseId": courseID,
		"delta":    30,
	})
	require.Equal(t, fiber.StatusOK, status)

	status, progress := doJSON(t, app, "POST", "/api/progress/time", studentToken, map[string]interface{}{
		"lessonId": lessonID,
		"courseId": courseID,
		"delta":    45,
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(75), progress["timeSpent"])

	status, progress = doJSON(t, app, "GET", fmt.Sprintf("/api/progress/%.0f", lessonID), studentToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(75), progress["timeSpent"])
}

func TestAddTimeRequiresNumericDelta(t *testing.T) {
	app := newTestApp()
	studentToken := register(t, app, "Bob Student", "bob@student.com", "student")

	// Missing delta
	status, _ := doJSON(t, app, "POST", "/api/progress/time", studentToken, map[string]interface{}{
		"lessonId": 1,
		"courseId": 1,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	// Non-numeric delta fails at the JSON boundary
	status, _ = doJSON(t, app, "POST", "/api/progress/time", studentToken, map[string]interface{}{
		"lessonId": 1,
		"courseId": 1,
		"delta":    "thirty",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestToggleNotesRoute(t *testing.T) {
	app := newTestApp()
	instructorToken := register(t, app, "Alice Instructor", "alice@teach.com", "instructor")
	studentToken := register(t, app, "Bob Student", "bob@student.com", "student")

	_, course := doJSON(t, app, "POST", "/api/courses", instructorToken, map[string]interface{}{
		"title": "Algorithms",
	})
	courseID := course["ID"].(float64)
	_, lesson := doJSON(t, app, "POST", "/api/lessons", instructorToken, map[string]interface{}{
		"courseId": courseID,
		"title":    "Sorting",
	})
	lessonID := lesson["ID"].(float64)

	body := map[string]interface{}{"lessonId": lessonID, "courseId": courseID}

	status, progress := doJSON(t, app, "POST", "/api/progress/notes", studentToken, body)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, progress["notesCompleted"])

	status, progress = doJSON(t, app, "POST", "/api/progress/notes", studentToken, body)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, progress["notesCompleted"])
}

func TestMarkProblemUnknownLessonRoute(t *testing.T) {
	app := newTestApp()
	studentToken := register(t, app, "Bob Student", "bob@student.com", "student")

	status, _ := doJSON(t, app, "POST", "/api/progress/problem", studentToken, map[string]interface{}{
		"lessonId":  999,
		"courseId":  1,
		"problemId": "prob-1",
	})
	assert.Equal(t, fiber.StatusNotFound, status)
}

// A non-owning instructor's update is rejected and the course re-reads
// unchanged.
func TestForeignInstructorCannotUpdateCourse(t *testing.T) {
	app := newTestApp()
	aliceToken := register(t, app, "Alice Instructor", "alice@teach.com", "instructor")
	eveToken := register(t, app, "Eve Instructor", "eve@teach.com", "instructor")

	status, course := doJSON(t, app, "POST", "/api/courses", aliceToken, map[string]interface{}{
		"title": "Algorithms",
	})
	require.Equal(t, fiber.StatusCreated, status)
	courseID := course["ID"].(float64)

	status, _ = doJSON(t, app, "PUT", fmt.Sprintf("/api/courses/%.0f", courseID), eveToken, map[string]interface{}{
		"title": "Hijacked",
	})
	assert.Equal(t, fiber.StatusForbidden, status)

	status, result := doJSON(t, app, "GET", "/api/courses", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	list := result["_list"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "Algorithms", list[0].(map[string]interface{})["title"])
}

func TestForeignInstructorCannotAddLesson(t *testing.T) {
	app := newTestApp()
	aliceToken := register(t, app, "Alice Instructor", "alice@teach.com", "instructor")
	eveToken := register(t, app, "Eve Instructor", "eve@teach.com", "instructor")

	_, course := doJSON(t, app, "POST", "/api/courses", aliceToken, map[string]interface{}{
		"title": "Algorithms",
	})
	courseID := course["ID"].(float64)

	status, _ := doJSON(t, app, "POST", "/api/lessons", eveToken, map[string]interface{}{
		"courseId": courseID,
		"title":    "Intruder lesson",
	})
	assert.Equal(t, fiber.StatusForbidden, status)

	status, result := doJSON(t, app, "GET", fmt.Sprintf("/api/courses/%.0f/lessons", courseID), aliceToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, result["_list"])
}

func TestGetLessonNotFound(t *testing.T) {
	app := newTestApp()
	studentToken := register(t, app, "Bob Student", "bob@student.com", "student")

	status, _ := doJSON(t, app, "GET", "/api/lessons/999", studentToken, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}
