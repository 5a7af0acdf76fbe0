// internal/api/api_test.go
//
// Handler and router tests driven through httptest with a sqlmock store.
//
// Context
// -------
// Each test builds a configuration record literal shaped like the variant
// under test, wires the router, and fires recorded requests.  Database
// expectations use sqlmock, so no MySQL instance is needed.
//
// Run: go test ./internal/api -v

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Weburz/burzpage/internal/config"
	"github.com/Weburz/burzpage/internal/content"
)

// stagingRecord returns a base-only record with every documentation
// endpoint disabled.
func stagingRecord() config.Record {
	return config.Record{
		"environment":      "staging",
		"title":            "BurzPage API",
		"version":          "v0.1.0",
		"contact":          map[string]string{"name": "Contact", "email": "somraj.saha@weburz.com"},
		"description":      "test description",
		"summary":          "test summary",
		"terms_of_service": "https://remington.bg/terms-of-service",
		"tags_metadata":    []map[string]string{},
		"openapi_url":      nil,
		"docs_url":         nil,
		"redoc_url":        nil,
		"host":             "localhost",
		"port":             8000,
	}
}

// developmentRecord extends stagingRecord with the dev-only fields, using
// throwaway asset directories.
func developmentRecord(t *testing.T) config.Record {
	t.Helper()

	static := t.TempDir()
	if err := os.WriteFile(filepath.Join(static, "robots.txt"), []byte("User-agent: *\n"), 0o644); err != nil {
		t.Fatalf("write static file: %v", err)
	}

	templates := t.TempDir()
	shell := `<!doctype html><title>{{ .Title }}</title><rapi-doc spec-url="{{ .SchemaURL }}"></rapi-doc>`
	if err := os.WriteFile(filepath.Join(templates, "docs.html"), []byte(shell), 0o644); err != nil {
		t.Fatalf("write docs template: %v", err)
	}

	rec := stagingRecord()
	rec["environment"] = "development"
	rec["debug"] = true
	rec["static_files_dir"] = filepath.ToSlash(static)
	rec["templates_dir"] = filepath.ToSlash(templates)
	rec["origins"] = []string{"http://localhost:3000"}
	rec["openapi_url"] = "/openapi.json"
	return rec
}

// newMockAPI wires a router over a sqlmock-backed store.
func newMockAPI(t *testing.T, rec config.Record) (*chi.Mux, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	a := New(rec, content.NewStore(sqlx.NewDb(db, "sqlmock")), zap.NewNop().Sugar())
	router, err := a.Router()
	if err != nil {
		t.Fatalf("Router: %v", err)
	}
	return router, mock
}

// do fires req at h and returns the recorder.
func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHelloRoute(t *testing.T) {
	router, _ := newMockAPI(t, stagingRecord())

	rr := do(router, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Hello World!" {
		t.Fatalf("message = %q", body["message"])
	}
}

func TestHealthRoute(t *testing.T) {
	router, _ := newMockAPI(t, stagingRecord())

	rr := do(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" || body["environment"] != "staging" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestGetUserBadID(t *testing.T) {
	router, _ := newMockAPI(t, stagingRecord())

	rr := do(router, httptest.NewRequest(http.MethodGet, "/users/not-a-uuid", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestListUsers(t *testing.T) {
	router, mock := newMockAPI(t, stagingRecord())

	id := uuid.MustParse("018f1c2e-0000-7000-8000-000000000001")
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, name, email FROM user ORDER BY id`,
	)).WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow(id.String(), "Somraj Saha", "somraj.saha@weburz.com"))

	rr := do(router, httptest.NewRequest(http.MethodGet, "/users/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var body map[string][]content.User
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if users := body["users"]; len(users) != 1 || users[0].ID != id {
		t.Fatalf("unexpected users: %#v", body)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestCreateUserValidation(t *testing.T) {
	router, _ := newMockAPI(t, stagingRecord())

	payload := strings.NewReader(`{"name": "Jane", "email": "not-an-email"}`)
	req := httptest.NewRequest(http.MethodPut, "/users/new", payload)
	req.Header.Set("Content-Type", "application/json")

	rr := do(router, req)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rr.Code)
	}

	var body ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Errors) == 0 || body.Errors[0].Source.Pointer != "/data/attributes/Email" {
		t.Fatalf("unexpected error document: %#v", body)
	}
}

func TestCreateArticle(t *testing.T) {
	router, mock := newMockAPI(t, stagingRecord())

	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO article (id, title, author, published) VALUES (?, ?, ?, ?)`,
	)).WithArgs(sqlmock.AnyArg(), "Hello", "Jane", false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	payload := strings.NewReader(`{"title": "Hello", "author": "Jane"}`)
	req := httptest.NewRequest(http.MethodPut, "/articles/new", payload)
	req.Header.Set("Content-Type", "application/json")

	rr := do(router, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rr.Code, rr.Body.String())
	}

	var body map[string]content.Article
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["article"].ID == uuid.Nil {
		t.Fatalf("article ID not assigned")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestUpdateCommentNotFound(t *testing.T) {
	router, mock := newMockAPI(t, stagingRecord())

	id := uuid.MustParse("018f1c2e-0000-7000-8000-00000000beef")
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE comment SET name = ?, email = ?, content = ? WHERE id = ?`,
	)).WithArgs("Jane", "jane@example.com", "hi", id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	payload := strings.NewReader(`{"name": "Jane", "email": "jane@example.com", "content": "hi"}`)
	req := httptest.NewRequest(http.MethodPost, "/comments/"+id.String()+"/edit", payload)
	req.Header.Set("Content-Type", "application/json")

	rr := do(router, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestDeleteUser(t *testing.T) {
	router, mock := newMockAPI(t, stagingRecord())

	id := uuid.MustParse("018f1c2e-0000-7000-8000-0000000000aa")
	mock.ExpectExec(regexp.QuoteMeta(
		`DELETE FROM user WHERE id = ?`,
	)).WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodDelete, "/users/"+id.String()+"/delete", nil)
	rr := do(router, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rr.Code)
	}
}

func TestOpenAPIDisabledWhenNil(t *testing.T) {
	router, _ := newMockAPI(t, stagingRecord())

	rr := do(router, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for disabled schema endpoint", rr.Code)
	}
}

func TestOpenAPIEnabled(t *testing.T) {
	rec := stagingRecord()
	rec["openapi_url"] = "/openapi.json"
	router, _ := newMockAPI(t, rec)

	rr := do(router, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var doc struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode schema: %v", err)
	}
	if doc.OpenAPI != "3.1.0" || doc.Info.Title != "BurzPage API" || doc.Info.Version != "v0.1.0" {
		t.Fatalf("unexpected schema: %+v", doc)
	}
}

func TestDevelopmentDocsAndStatic(t *testing.T) {
	router, _ := newMockAPI(t, developmentRecord(t))

	rr := do(router, httptest.NewRequest(http.MethodGet, "/docs", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("docs status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "rapi-doc") {
		t.Fatalf("docs body does not contain the RapiDoc shell")
	}
	if !strings.Contains(rr.Body.String(), "/openapi.json") {
		t.Fatalf("docs shell does not reference the schema URL")
	}

	rr = do(router, httptest.NewRequest(http.MethodGet, "/static/robots.txt", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("static status = %d, want 200", rr.Code)
	}
}

func TestRouterRequiresStaticDir(t *testing.T) {
	rec := developmentRecord(t)
	rec["static_files_dir"] = filepath.Join(t.TempDir(), "missing")

	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	a := New(rec, content.NewStore(sqlx.NewDb(db, "sqlmock")), zap.NewNop().Sugar())
	if _, err := a.Router(); err == nil {
		t.Fatalf("Router succeeded with a missing static dir")
	}
}
