package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/azpdscc/website-api/internal/ai"
	"github.com/azpdscc/website-api/internal/api"
	"github.com/azpdscc/website-api/internal/auth"
	"github.com/azpdscc/website-api/internal/config"
	"github.com/azpdscc/website-api/internal/mailer"
	"github.com/azpdscc/website-api/internal/mocks"
	"github.com/azpdscc/website-api/internal/models"
	"github.com/azpdscc/website-api/internal/repository"
	"github.com/azpdscc/website-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	testAdminKey   = "test-admin-key"
	testCronSecret = "test-cron-secret"
	testJWTSecret  = "test-jwt-secret"
)

type testEnv struct {
	router      *gin.Engine
	events      *mocks.MockEventRepository
	blog        *mocks.MockBlogRepository
	scheduled   *mocks.MockScheduledPostRepository
	sponsors    *mocks.MockSponsorRepository
	vendors     *mocks.MockVendorRepository
	subscribers *mocks.MockSubscriberRepository
	mail        *mocks.MockMailer
	sessions    auth.SessionStore
	cfg         *config.Config
}

func setupTestRouter(aiClient ai.Client, mail mailer.Mailer) *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		events:      mocks.NewMockEventRepository(),
		blog:        mocks.NewMockBlogRepository(),
		scheduled:   mocks.NewMockScheduledPostRepository(),
		sponsors:    mocks.NewMockSponsorRepository(),
		vendors:     mocks.NewMockVendorRepository(),
		subscribers: mocks.NewMockSubscriberRepository(),
		sessions:    auth.NewMemorySessionStore(),
	}
	if m, ok := mail.(*mocks.MockMailer); ok {
		env.mail = m
	}

	repos := &repository.Repositories{
		Event:       env.events,
		Blog:        env.blog,
		Scheduled:   env.scheduled,
		Sponsor:     env.sponsors,
		Team:        mocks.NewMockTeamRepository(),
		Vendor:      env.vendors,
		Subscriber:  env.subscribers,
		Performance: mocks.NewMockPerformanceRepository(),
	}

	env.cfg = &config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Email:  config.EmailConfig{AdminEmail: "admin@azpdscc.org"},
		Auth: config.AuthConfig{
			AdminAPIKey:       testAdminKey,
			CronSecret:        testCronSecret,
			JWTSecret:         testJWTSecret,
			JWTExpiry:         time.Hour,
			VolunteerUsername: "scanner",
			VolunteerPassword: "letmein",
			SessionTTL:        time.Hour,
		},
	}

	log := zerolog.Nop()
	services := service.NewServices(repos, env.cfg, aiClient, mail, log)
	env.router = api.NewRouter(services, env.cfg, env.sessions, log)
	return env
}

func doJSON(router *gin.Engine, method, url, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	env := setupTestRouter(nil, nil)

	w := doJSON(env.router, "GET", "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "azpdscc-website-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestPublicEvents(t *testing.T) {
	env := setupTestRouter(nil, nil)
	env.events.Events["ev-1"] = &models.Event{
		ID:   "ev-1",
		Slug: "vaisakhi-mela-2026",
		Name: "Vaisakhi Mela 2026",
		Date: "2026-04-11",
	}

	w := doJSON(env.router, "GET", "/v1/events", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string][]models.Event
	json.Unmarshal(w.Body.Bytes(), &response)
	if len(response["events"]) != 1 {
		t.Errorf("Expected 1 event, got %d", len(response["events"]))
	}

	w = doJSON(env.router, "GET", "/v1/events/vaisakhi-mela-2026", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for known slug, got %d", w.Code)
	}

	w = doJSON(env.router, "GET", "/v1/events/no-such-event", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown slug, got %d", w.Code)
	}
}

func TestBlogIndexPublishesDueScheduledPosts(t *testing.T) {
	aiClient := mocks.NewMockAIClient(
		`{"title":"Celebrating Diwali","excerpt":"Lights across the valley","content":"<p>Diwali in Arizona</p>"}`,
	)
	env := setupTestRouter(aiClient, nil)
	env.scheduled.Posts["sp-1"] = &models.ScheduledBlogPost{
		ID:          "sp-1",
		Topic:       "Celebrating Diwali",
		PublishDate: "2020-01-01",
	}

	w := doJSON(env.router, "GET", "/v1/blog", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string][]models.BlogPost
	json.Unmarshal(w.Body.Bytes(), &response)
	posts := response["posts"]
	if len(posts) != 1 {
		t.Fatalf("Expected 1 published post, got %d", len(posts))
	}
	if posts[0].Status != models.BlogStatusPublished {
		t.Errorf("Expected published status, got %s", posts[0].Status)
	}
	if len(env.scheduled.Posts) != 0 {
		t.Errorf("Expected scheduled entry to be consumed, %d remain", len(env.scheduled.Posts))
	}
}

func TestAdminBlogUnauthorized(t *testing.T) {
	env := setupTestRouter(nil, nil)
	body := `{"title":"Test","slug":"test","date":"2026-01-15","content":"<p>x</p>"}`

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"missing key", nil},
		{"wrong key", map[string]string{"x-admin-api-key": "wrong-key"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(env.router, "POST", "/v1/admin/blog", body, tt.headers)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected status 401, got %d", w.Code)
			}

			var response map[string]interface{}
			json.Unmarshal(w.Body.Bytes(), &response)
			if response["message"] != "unauthorized" {
				t.Errorf("Expected message 'unauthorized', got %v", response["message"])
			}
		})
	}
}

func TestAdminBlogCreatePost(t *testing.T) {
	env := setupTestRouter(nil, nil)
	body := `{"title":"Community Kitchen Update","date":"2026-02-01","author":"AZPDSCC Team","content":"<p>News</p>","status":"Published"}`

	w := doJSON(env.router, "POST", "/v1/admin/blog", body, map[string]string{"x-admin-api-key": testAdminKey})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["id"] == nil || response["id"] == "" {
		t.Error("Expected generated id in response")
	}
	if response["slug"] != "community-kitchen-update" {
		t.Errorf("Expected slugified title, got %v", response["slug"])
	}
	if len(env.blog.Posts) != 1 {
		t.Errorf("Expected 1 stored post, got %d", len(env.blog.Posts))
	}
}

func TestAdminBlogCreatePost_ValidationFailure(t *testing.T) {
	env := setupTestRouter(nil, nil)
	body := `{"title":"No Date"}`

	w := doJSON(env.router, "POST", "/v1/admin/blog", body, map[string]string{"x-admin-api-key": testAdminKey})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("date is required")) {
		t.Errorf("Expected date validation error, got: %s", w.Body.String())
	}
}

func TestAdminBlogMethodNotAllowed(t *testing.T) {
	env := setupTestRouter(nil, nil)

	w := doJSON(env.router, "GET", "/v1/admin/blog", "", map[string]string{"x-admin-api-key": testAdminKey})
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["message"] != "method not allowed" {
		t.Errorf("Expected method not allowed message, got %v", response["message"])
	}
}

func TestCronWeeklyPost(t *testing.T) {
	aiClient := mocks.NewMockAIClient(
		`{"title":"The Role of Seva","excerpt":"Service first","content":"<p>Seva</p>"}`,
	)
	env := setupTestRouter(aiClient, nil)

	w := doJSON(env.router, "GET", "/v1/cron/weekly-post?secret="+testCronSecret, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["success"] != true {
		t.Errorf("Expected success true, got %v", response["success"])
	}
	if response["slug"] != "the-role-of-seva" {
		t.Errorf("Expected generated slug, got %v", response["slug"])
	}
}

func TestCronWeeklyPost_Unauthorized(t *testing.T) {
	env := setupTestRouter(nil, nil)

	for _, url := range []string{"/v1/cron/weekly-post", "/v1/cron/weekly-post?secret=wrong"} {
		w := doJSON(env.router, "GET", url, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected status 401 for %s, got %d", url, w.Code)
		}
	}
}

func TestCronWeeklyPost_NotConfigured(t *testing.T) {
	env := setupTestRouter(nil, nil)

	w := doJSON(env.router, "GET", "/v1/cron/weekly-post?secret="+testCronSecret, "", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503 without a model provider, got %d", w.Code)
	}
}

func TestVolunteerLoginAndCheckIn(t *testing.T) {
	env := setupTestRouter(nil, nil)
	env.vendors.Applications["app-1"] = &models.VendorApplication{
		ID:            "app-1",
		Name:          "Harpreet Singh",
		Organization:  "Singh Sweets",
		Email:         "harpreet@example.com",
		BoothType:     "food",
		CheckInStatus: models.CheckInStatusPending,
	}

	// Roster requires a session
	w := doJSON(env.router, "GET", "/v1/vendors", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status 401 without session, got %d", w.Code)
	}

	// Bad credentials
	w = doJSON(env.router, "POST", "/v1/volunteer/login", `{"username":"scanner","password":"nope"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status 401 for bad credentials, got %d", w.Code)
	}

	// Login
	w = doJSON(env.router, "POST", "/v1/volunteer/login", `{"username":"scanner","password":"letmein"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for login, got %d. Body: %s", w.Code, w.Body.String())
	}
	var session auth.Session
	json.Unmarshal(w.Body.Bytes(), &session)
	if session.Token == "" {
		t.Fatal("Expected session token")
	}
	headers := map[string]string{"x-session-token": session.Token}

	// Roster with session
	w = doJSON(env.router, "GET", "/v1/vendors", "", headers)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 with session, got %d", w.Code)
	}

	// First check-in transitions
	w = doJSON(env.router, "POST", "/v1/vendors/app-1/checkin", "", headers)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var result service.CheckInResult
	json.Unmarshal(w.Body.Bytes(), &result)
	if result.AlreadyCheckedIn {
		t.Error("First check-in should not report already checked in")
	}

	// Second scan is idempotent
	w = doJSON(env.router, "POST", "/v1/vendors/app-1/checkin", "", headers)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	json.Unmarshal(w.Body.Bytes(), &result)
	if !result.AlreadyCheckedIn {
		t.Error("Second check-in should report already checked in")
	}

	// Unknown application
	w = doJSON(env.router, "POST", "/v1/vendors/no-such-app/checkin", "", headers)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}

	// Check-in pass renders a PNG
	w = doJSON(env.router, "GET", "/v1/vendors/app-1/pass", "", headers)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for pass, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}
}

func TestVendorApplyValidation(t *testing.T) {
	env := setupTestRouter(nil, nil)

	tests := []struct {
		name          string
		body          string
		expectedError string
	}{
		{
			name:          "missing email",
			body:          `{"name":"A","organization":"B","boothType":"food"}`,
			expectedError: "email is required",
		},
		{
			name:          "invalid booth type",
			body:          `{"name":"A","organization":"B","email":"a@b.com","boothType":"circus"}`,
			expectedError: "invalid boothType",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(env.router, "POST", "/v1/vendors/apply", tt.body, nil)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
			if !bytes.Contains(w.Body.Bytes(), []byte(tt.expectedError)) {
				t.Errorf("Expected error '%s' in response, got: %s", tt.expectedError, w.Body.String())
			}
		})
	}
}

func TestSubscribeEndpoint(t *testing.T) {
	mail := mocks.NewMockMailer()
	env := setupTestRouter(nil, mail)
	body := `{"name":"Simran Kaur","email":"Simran@Example.com"}`

	w := doJSON(env.router, "POST", "/v1/subscribe", body, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	var result service.SubscribeResult
	json.Unmarshal(w.Body.Bytes(), &result)
	if result.AlreadySubscribed {
		t.Error("First subscription should not report already subscribed")
	}
	if !result.WelcomeEmailSent {
		t.Error("Expected welcome email to be sent")
	}
	if mail.SentTo("simran@example.com") != 1 {
		t.Errorf("Expected 1 welcome email, got %d", mail.SentTo("simran@example.com"))
	}

	// Same address again, different casing
	w = doJSON(env.router, "POST", "/v1/subscribe", body, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	json.Unmarshal(w.Body.Bytes(), &result)
	if !result.AlreadySubscribed {
		t.Error("Duplicate subscription should report already subscribed")
	}
	if mail.SentTo("simran@example.com") != 1 {
		t.Errorf("Duplicate subscription should not send another welcome email, got %d", mail.SentTo("simran@example.com"))
	}
	if len(env.subscribers.Subscribers) != 1 {
		t.Errorf("Expected 1 subscriber record, got %d", len(env.subscribers.Subscribers))
	}
}

func TestChatEndpoint_Fallback(t *testing.T) {
	env := setupTestRouter(nil, nil)

	w := doJSON(env.router, "POST", "/v1/chat", `{"message":"When is the next mela?"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["reply"] == "" {
		t.Error("Expected a fallback reply even without a model provider")
	}

	w = doJSON(env.router, "POST", "/v1/chat", `{}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for empty message, got %d", w.Code)
	}
}

func TestAdminScreensRequireJWT(t *testing.T) {
	env := setupTestRouter(nil, nil)
	body := `{"name":"Holi Festival","date":"2026-03-14"}`

	w := doJSON(env.router, "POST", "/v1/admin/events", body, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 without token, got %d", w.Code)
	}

	volunteerToken, _ := auth.GenerateToken(testJWTSecret, "vol-1", auth.RoleVolunteer, time.Hour)
	w = doJSON(env.router, "POST", "/v1/admin/events", body, map[string]string{"Authorization": "Bearer " + volunteerToken})
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403 for volunteer role, got %d", w.Code)
	}

	adminToken, _ := auth.GenerateToken(testJWTSecret, "admin-1", auth.RoleAdmin, time.Hour)
	w = doJSON(env.router, "POST", "/v1/admin/events", body, map[string]string{"Authorization": "Bearer " + adminToken})
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 with admin token, got %d. Body: %s", w.Code, w.Body.String())
	}
	if len(env.events.Events) != 1 {
		t.Errorf("Expected 1 stored event, got %d", len(env.events.Events))
	}
}

func TestGenerateEventEndpoint(t *testing.T) {
	adminToken, _ := auth.GenerateToken(testJWTSecret, "admin-1", auth.RoleAdmin, time.Hour)
	headers := map[string]string{"Authorization": "Bearer " + adminToken}
	body := `{"name":"Teeyan Da Mela","date":"2026-08-01","location":"Phoenix"}`

	// Without a model provider the endpoint reports unavailable
	env := setupTestRouter(nil, nil)
	w := doJSON(env.router, "POST", "/v1/admin/events/generate", body, headers)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503 without model provider, got %d", w.Code)
	}

	// Malformed model output is a bad gateway, not a stored event
	env = setupTestRouter(mocks.NewMockAIClient(`not json at all`), nil)
	w = doJSON(env.router, "POST", "/v1/admin/events/generate", body, headers)
	if w.Code != http.StatusBadGateway {
		t.Errorf("Expected status 502 for malformed output, got %d. Body: %s", w.Code, w.Body.String())
	}
	if len(env.events.Events) != 0 {
		t.Errorf("No event should be stored on generation failure, got %d", len(env.events.Events))
	}

	// Valid output persists a complete event
	env = setupTestRouter(mocks.NewMockAIClient(
		`{"shortDescription":"An evening of folk dance","fullDescription":"<p>Full details</p>"}`,
	), nil)
	w = doJSON(env.router, "POST", "/v1/admin/events/generate", body, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	var event models.Event
	json.Unmarshal(w.Body.Bytes(), &event)
	if event.Slug != "teeyan-da-mela" {
		t.Errorf("Expected slug from event name, got %s", event.Slug)
	}
	if event.ShortDescription == "" || event.FullDescription == "" {
		t.Error("Generated event should carry both descriptions")
	}
}

func TestCORSPreflightAndHeaders(t *testing.T) {
	env := setupTestRouter(nil, nil)

	req := httptest.NewRequest("OPTIONS", "/v1/subscribe", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204 for OPTIONS, got %d", w.Code)
	}
	if allowOrigin := w.Header().Get("Access-Control-Allow-Origin"); allowOrigin != "*" {
		t.Errorf("Expected Access-Control-Allow-Origin '*', got '%s'", allowOrigin)
	}
}
