package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer creates a server without a database; only the request
// validation paths, which never reach the db, are exercised here.
func newTestServer() *Server {
	return &Server{}
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}

func postExperience(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/experiences", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.handleCreateExperience(w, req)
	return w
}

func TestHandleCreateExperience_InvalidJSON(t *testing.T) {
	s := newTestServer()
	w := postExperience(t, s, "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCreateExperience_MissingFields(t *testing.T) {
	s := newTestServer()
	w := postExperience(t, s, `{"jobTitle": "Frontend Developer"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorBody(t, w), "companyName")
}

func TestHandleCreateExperience_BadDate(t *testing.T) {
	s := newTestServer()
	w := postExperience(t, s, `{
		"jobTitle": "Frontend Developer",
		"companyName": "Tech Solutions Inc.",
		"startDate": "15/01/2021",
		"endDate": "2022-06-30"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCreateExperience_EndBeforeStart(t *testing.T) {
	s := newTestServer()
	w := postExperience(t, s, `{
		"jobTitle": "Frontend Developer",
		"companyName": "Tech Solutions Inc.",
		"startDate": "2022-06-30",
		"endDate": "2021-01-15"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorBody(t, w), "EndDate")
}

func TestHandleCreateExperience_EndEqualsStart(t *testing.T) {
	s := newTestServer()
	w := postExperience(t, s, `{
		"jobTitle": "Frontend Developer",
		"companyName": "Tech Solutions Inc.",
		"startDate": "2021-01-15",
		"endDate": "2021-01-15"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCreateExperience_UnknownField(t *testing.T) {
	s := newTestServer()
	w := postExperience(t, s, `{
		"jobTitle": "Frontend Developer",
		"companyName": "Tech Solutions Inc.",
		"startDate": "2021-01-15",
		"endDate": "2022-06-30",
		"salary": 90000
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUpdateExperience_InvalidID(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodPut, "/experiences/not-a-uuid", strings.NewReader("{}"))
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleUpdateExperience(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorBody(t, w), "Invalid experience ID")
}

func TestHandleDeleteExperience_InvalidID(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodDelete, "/experiences/nope", nil)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()

	s.handleDeleteExperience(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestWithCORS_Preflight(t *testing.T) {
	s := newTestServer()
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/experiences", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
