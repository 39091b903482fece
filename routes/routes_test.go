// routes_test.go - End-to-end tests through the fully assembled engine

package routes

import (
	"bytes"             // For building request bodies
	"compress/gzip"     // For reading compressed responses
	"encoding/json"     // For encoding/decoding JSON
	"io"                // For reading bodies
	"net/http"          // HTTP status codes
	"net/http/httptest" // HTTP test helpers
	"path/filepath"     // For building the test DB path
	"testing"           // Go's testing package

	"go-course-backend/database"   // Database connection
	"go-course-backend/middleware" // Request id header name

	"github.com/gin-gonic/gin"            // Gin web framework
	"github.com/stretchr/testify/assert"  // For assertions
	"github.com/stretchr/testify/require" // For fatal assertions
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("SEED_EMAIL", "")
	require.NoError(t, database.Connect(filepath.Join(t.TempDir(), "routes.db")))
	t.Cleanup(func() { _ = database.Close() })
	return New()
}

func do(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestWelcomeAndNoRoute(t *testing.T) {
	r := setup(t)

	w := do(r, jsonRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to the course catalog REST API!"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = do(r, jsonRequest("GET", "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Route Not Found"}`, w.Body.String())
}

func TestGzipResponses(t *testing.T) {
	r := setup(t)

	req := jsonRequest("GET", "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := do(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Welcome")
}

func TestCourseLifecycle(t *testing.T) {
	r := setup(t)

	w := do(r, jsonRequest("POST", "/users", map[string]string{
		"firstName":    "Sam",
		"lastName":     "Smith",
		"emailAddress": "sam@smith.com",
		"password":     "sampassword",
	}))
	require.Equal(t, http.StatusCreated, w.Code)

	req := jsonRequest("POST", "/courses", map[string]string{"title": "Learn How to Program"})
	req.SetBasicAuth("sam@smith.com", "sampassword")
	w = do(r, req)
	require.Equal(t, http.StatusCreated, w.Code)
	location := w.Header().Get("Location")

	w = do(r, jsonRequest("GET", location, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var course struct {
		Title string `json:"title"`
		Owner struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		} `json:"owner"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &course))
	assert.Equal(t, "Learn How to Program", course.Title)
	assert.Equal(t, "Sam", course.Owner.FirstName)

	req = jsonRequest("PUT", location, map[string]string{"title": "Learn Go"})
	req.SetBasicAuth("sam@smith.com", "sampassword")
	assert.Equal(t, http.StatusNoContent, do(r, req).Code)

	req = jsonRequest("DELETE", location, nil)
	req.SetBasicAuth("sam@smith.com", "sampassword")
	assert.Equal(t, http.StatusNoContent, do(r, req).Code)

	assert.Equal(t, http.StatusNotFound, do(r, jsonRequest("GET", location, nil)).Code)
}
