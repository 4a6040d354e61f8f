package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobhive/internal/config"
	"jobhive/internal/database"
	"jobhive/internal/middleware"
	"jobhive/internal/models"
	"jobhive/internal/service"
	"jobhive/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "CorrectHorse42Battery"

var testCfg = &config.Config{
	Port:      "0",
	Env:       "test",
	JWTSecret: "test-secret-test-secret-test-secret!",
}

// newTestServer builds a Server backed by an in-memory database and file
// store, plus a Fiber app with the real route table.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.NewGormConfig())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second pool connection would see a fresh empty :memory: database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	middleware.InitMiddleware(testCfg)
	srv := NewServerWithDeps(testCfg, db, nil, storage.NewMemoryStore())

	app := fiber.New()
	srv.SetupRoutes(app)
	return srv, app
}

// createUser registers a user through the service layer and returns it with
// a Bearer token for authenticated requests.
func createUser(t *testing.T, srv *Server, email string) (*models.User, string) {
	t.Helper()
	user, err := srv.userService.Register(context.Background(), service.RegisterInput{
		Name:     "Test User",
		Email:    email,
		Password: testPassword,
	})
	require.NoError(t, err)

	token, err := srv.generateToken(user.ID, user.Name)
	require.NoError(t, err)
	return user, "Bearer " + token
}

func createJob(t *testing.T, srv *Server, ownerID uint, mutate ...func(*service.JobInput)) *models.Job {
	t.Helper()
	in := service.JobInput{
		Title:        "Backend Engineer",
		Description:  "Build and run services",
		Salary:       90000,
		Tags:         "go, postgres",
		JobType:      models.JobTypeFullTime,
		City:         "Boston",
		ContactEmail: "jobs@example.com",
		ContactPhone: "555-0100",
		CompanyName:  "Example Corp",
	}
	for _, m := range mutate {
		m(&in)
	}
	job, err := srv.jobService.CreateJob(context.Background(), ownerID, in)
	require.NoError(t, err)
	return job
}

type formFile struct {
	field    string
	filename string
	content  []byte
}

// multipartBody builds a multipart form request body.
func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := w.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = fw.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func validJobForm() map[string]string {
	return map[string]string{
		"title":         "Backend Engineer",
		"description":   "Build and run services",
		"salary":        "90000",
		"job_type":      models.JobTypeFullTime,
		"city":          "Boston",
		"contact_email": "jobs@example.com",
		"contact_phone": "555-0100",
		"company_name":  "Example Corp",
	}
}

// doRequest runs a request through the app and decodes the JSON response body.
func doRequest(t *testing.T, app *fiber.App, req *http.Request, out any) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	if out != nil {
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, out), "body: %s", body)
	}
	return resp
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
