package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/testprep-api/database"
)

// These tests exercise the full HTTP surface against a real database.
// They require:
// 1. RUN_INTEGRATION_TESTS=true
// 2. A reachable PostgreSQL instance configured via the usual DB_* vars
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run")
	}

	if os.Getenv("JWT_SECRET") == "" {
		t.Setenv("JWT_SECRET", "integration-test-secret")
	}

	store, err := database.StartGORM()
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	if err := store.Init(); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	app := fiber.New()
	SetupRoutes(app, store)
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (int, envelope, string) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	var env envelope
	_ = json.Unmarshal(raw, &env)
	return resp.StatusCode, env, string(raw)
}

func registerUser(t *testing.T, app *fiber.App, label string) (string, string) {
	t.Helper()

	email := fmt.Sprintf("%s-%d@integration.test", label, time.Now().UnixNano())
	status, env, raw := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"name":     "Integration " + label,
		"email":    email,
		"password": "password123",
	}, "")
	if status != http.StatusCreated {
		t.Fatalf("register %s: status = %d, body = %s", label, status, raw)
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		t.Fatalf("register %s: missing token in %s", label, raw)
	}
	return email, data.Token
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	app := setupTestApp(t)

	email, _ := registerUser(t, app, "dup")

	status, env, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"name":     "Second Registration",
		"email":    email,
		"password": "password123",
	}, "")
	if status != http.StatusConflict {
		t.Errorf("second registration status = %d, want %d", status, http.StatusConflict)
	}
	if env.Error == nil || env.Error.Code != "CONFLICT" {
		t.Error("expected CONFLICT error code")
	}
}

func TestLoginFailuresDoNotLeakAccountExistence(t *testing.T) {
	app := setupTestApp(t)

	email, _ := registerUser(t, app, "leak")

	wrongPwStatus, wrongPwEnv, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"email":    email,
		"password": "wrong-password",
	}, "")
	unknownStatus, unknownEnv, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"email":    fmt.Sprintf("nobody-%d@integration.test", time.Now().UnixNano()),
		"password": "password123",
	}, "")

	if wrongPwStatus != http.StatusUnauthorized || unknownStatus != http.StatusUnauthorized {
		t.Fatalf("statuses = %d and %d, want both %d", wrongPwStatus, unknownStatus, http.StatusUnauthorized)
	}
	if wrongPwEnv.Error == nil || unknownEnv.Error == nil {
		t.Fatal("expected error payloads")
	}
	if wrongPwEnv.Error.Message != unknownEnv.Error.Message {
		t.Errorf("messages differ: %q vs %q", wrongPwEnv.Error.Message, unknownEnv.Error.Message)
	}
}

func TestResultsAreScopedToOwner(t *testing.T) {
	app := setupTestApp(t)

	_, tokenA := registerUser(t, app, "owner-a")
	_, tokenB := registerUser(t, app, "owner-b")

	status, _, raw := doJSON(t, app, http.MethodPost, "/api/v1/test-results", map[string]interface{}{
		"test_type":       "gre",
		"section":         "verbal",
		"score":           72,
		"total_questions": 20,
		"correct_answers": 14,
		"time_spent":      35,
	}, tokenA)
	if status != http.StatusCreated {
		t.Fatalf("submit result: status = %d, body = %s", status, raw)
	}

	statusB, envB, _ := doJSON(t, app, http.MethodGet, "/api/v1/test-results", nil, tokenB)
	if statusB != http.StatusOK {
		t.Fatalf("list results for B: status = %d", statusB)
	}

	var resultsB []map[string]interface{}
	if err := json.Unmarshal(envB.Data, &resultsB); err != nil {
		t.Fatalf("failed to decode results: %v", err)
	}
	if len(resultsB) != 0 {
		t.Errorf("account B sees %d results, want 0", len(resultsB))
	}
}

func TestDashboardStats(t *testing.T) {
	app := setupTestApp(t)

	_, token := registerUser(t, app, "stats")

	// Fresh account: everything zero
	status, env, _ := doJSON(t, app, http.MethodGet, "/api/v1/dashboard-stats", nil, token)
	if status != http.StatusOK {
		t.Fatalf("dashboard-stats status = %d", status)
	}
	var stats struct {
		TestsCompleted int `json:"testsCompleted"`
		AverageScore   int `json:"averageScore"`
		TotalStudyTime int `json:"totalStudyTime"`
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}
	if stats.TestsCompleted != 0 || stats.AverageScore != 0 || stats.TotalStudyTime != 0 {
		t.Errorf("fresh account stats = %+v, want zeros", stats)
	}

	for _, score := range []int{80, 90} {
		status, _, raw := doJSON(t, app, http.MethodPost, "/api/v1/test-results", map[string]interface{}{
			"test_type":       "gre",
			"section":         "quantitative",
			"score":           score,
			"total_questions": 10,
			"correct_answers": score / 10,
			"time_spent":      30,
		}, token)
		if status != http.StatusCreated {
			t.Fatalf("submit result: status = %d, body = %s", status, raw)
		}
	}

	status, env, _ = doJSON(t, app, http.MethodGet, "/api/v1/dashboard-stats", nil, token)
	if status != http.StatusOK {
		t.Fatalf("dashboard-stats status = %d", status)
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}
	if stats.TestsCompleted != 2 {
		t.Errorf("testsCompleted = %d, want 2", stats.TestsCompleted)
	}
	if stats.AverageScore != 85 {
		t.Errorf("averageScore = %d, want 85", stats.AverageScore)
	}
	if stats.TotalStudyTime != 60 {
		t.Errorf("totalStudyTime = %d, want 60", stats.TotalStudyTime)
	}
}

func TestQuestionListingHidesAnswers(t *testing.T) {
	app := setupTestApp(t)

	// Make sure fixture questions exist
	doJSON(t, app, http.MethodPost, "/api/v1/seed-data", nil, "")

	status, env, raw := doJSON(t, app, http.MethodGet, "/api/v1/questions/gre/verbal", nil, "")
	if status != http.StatusOK {
		t.Fatalf("list questions status = %d", status)
	}
	if strings.Contains(raw, "correct_answer") || strings.Contains(raw, "explanation") {
		t.Error("question listing leaks answer fields")
	}

	var questions []struct {
		ID      uint     `json:"id"`
		Options []string `json:"options"`
	}
	if err := json.Unmarshal(env.Data, &questions); err != nil {
		t.Fatalf("failed to decode questions: %v", err)
	}
	if len(questions) == 0 {
		t.Fatal("expected at least one gre/verbal question after seeding")
	}

	// Grade an attempt; the correct index is revealed only here
	first := questions[0]
	status, env, raw = doJSON(t, app, http.MethodPost, "/api/v1/check-answer", map[string]interface{}{
		"questionId": first.ID,
		"userAnswer": 0,
	}, "")
	if status != http.StatusOK {
		t.Fatalf("check-answer status = %d, body = %s", status, raw)
	}

	var check struct {
		Correct       bool   `json:"correct"`
		CorrectAnswer int    `json:"correctAnswer"`
		Explanation   string `json:"explanation"`
	}
	if err := json.Unmarshal(env.Data, &check); err != nil {
		t.Fatalf("failed to decode check: %v", err)
	}
	if check.CorrectAnswer < 0 || check.CorrectAnswer >= len(first.Options) {
		t.Errorf("correctAnswer %d out of range", check.CorrectAnswer)
	}

	// Re-submit the revealed index; must grade as correct with the same explanation
	status, env, _ = doJSON(t, app, http.MethodPost, "/api/v1/check-answer", map[string]interface{}{
		"questionId": first.ID,
		"userAnswer": check.CorrectAnswer,
	}, "")
	if status != http.StatusOK {
		t.Fatalf("check-answer status = %d", status)
	}
	var recheck struct {
		Correct     bool   `json:"correct"`
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal(env.Data, &recheck); err != nil {
		t.Fatalf("failed to decode recheck: %v", err)
	}
	if !recheck.Correct {
		t.Error("expected revealed index to grade as correct")
	}
	if recheck.Explanation != check.Explanation {
		t.Error("explanation should not depend on the submitted answer")
	}
}

func TestCheckAnswerUnknownQuestion(t *testing.T) {
	app := setupTestApp(t)

	status, _, _ := doJSON(t, app, http.MethodPost, "/api/v1/check-answer", map[string]interface{}{
		"questionId": 999999999,
		"userAnswer": 0,
	}, "")
	if status != http.StatusNotFound {
		t.Errorf("check-answer status = %d, want %d", status, http.StatusNotFound)
	}
}

func TestUniversityFiltersAndOrdering(t *testing.T) {
	app := setupTestApp(t)

	doJSON(t, app, http.MethodPost, "/api/v1/seed-data", nil, "")

	status, env, _ := doJSON(t, app, http.MethodGet, "/api/v1/universities?country=USA", nil, "")
	if status != http.StatusOK {
		t.Fatalf("universities status = %d", status)
	}

	var universities []struct {
		Name    string `json:"name"`
		Country string `json:"country"`
		Ranking *int   `json:"ranking"`
	}
	if err := json.Unmarshal(env.Data, &universities); err != nil {
		t.Fatalf("failed to decode universities: %v", err)
	}
	if len(universities) == 0 {
		t.Fatal("expected USA universities after seeding")
	}

	previous := 0
	for i, u := range universities {
		if u.Country != "USA" {
			t.Errorf("entry %d country = %q, want USA", i, u.Country)
		}
		if u.Ranking != nil {
			if *u.Ranking < previous {
				t.Error("rankings are not ascending")
			}
			previous = *u.Ranking
		}
	}

	status, env, _ = doJSON(t, app, http.MethodGet, "/api/v1/universities?search=ox", nil, "")
	if status != http.StatusOK {
		t.Fatalf("universities search status = %d", status)
	}
	if err := json.Unmarshal(env.Data, &universities); err != nil {
		t.Fatalf("failed to decode universities: %v", err)
	}
	if len(universities) == 0 {
		t.Fatal("expected a match for search=ox")
	}
	for i, u := range universities {
		if !strings.Contains(strings.ToLower(u.Name), "ox") {
			t.Errorf("entry %d name %q does not match search", i, u.Name)
		}
	}
}

func TestCreateUniversityRequiresAdmin(t *testing.T) {
	app := setupTestApp(t)

	payload := map[string]interface{}{
		"name":    "Unauthorized University",
		"country": "USA",
	}

	// No token
	status, _, _ := doJSON(t, app, http.MethodPost, "/api/v1/universities", payload, "")
	if status != http.StatusUnauthorized {
		t.Errorf("no-token status = %d, want %d", status, http.StatusUnauthorized)
	}

	// Ordinary user token
	_, token := registerUser(t, app, "non-admin")
	status, _, _ = doJSON(t, app, http.MethodPost, "/api/v1/universities", payload, token)
	if status != http.StatusForbidden {
		t.Errorf("non-admin status = %d, want %d", status, http.StatusForbidden)
	}

	// Neither attempt may have created the record
	status, env, _ := doJSON(t, app, http.MethodGet, "/api/v1/universities?search=Unauthorized+University", nil, "")
	if status != http.StatusOK {
		t.Fatalf("universities status = %d", status)
	}
	var universities []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(env.Data, &universities); err != nil {
		t.Fatalf("failed to decode universities: %v", err)
	}
	if len(universities) != 0 {
		t.Error("rejected requests must not create records")
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	app := setupTestApp(t)

	_, token := registerUser(t, app, "logout")

	status, _, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/logout", nil, token)
	if status != http.StatusOK {
		t.Fatalf("logout status = %d", status)
	}

	status, _, _ = doJSON(t, app, http.MethodGet, "/api/v1/profile", nil, token)
	if status != http.StatusUnauthorized {
		t.Errorf("revoked token status = %d, want %d", status, http.StatusUnauthorized)
	}
}
