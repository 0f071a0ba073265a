package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume"
	"github.com/resumeeditor/resume-editor/backend/go-services/internal/resume/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resumeBody = `{
	"personal_info": {"name": "A", "email": "a@example.com", "phone": "555-0100"},
	"summary": "Experienced developer",
	"experience": [{"title": "Engineer", "company": "Acme", "duration": "2020-2023", "description": "Built things"}],
	"education": [{"degree": "BSc", "institution": "Uni", "duration": "2016-2020", "description": ""}],
	"skills": ["Go", "Python"],
	"custom_sections": [{"title": "Awards", "content": "Hackathon winner"}]
}`

func newRouter(t *testing.T) (*gin.Engine, service.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, err := service.NewFileService(t.TempDir())
	require.NoError(t, err)
	g := gin.New()
	RegisterResumeRoutes(g, svc)
	return g, svc
}

func do(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	g.ServeHTTP(w, req)
	return w
}

func TestResumeHandler_CRUD(t *testing.T) {
	g, _ := newRouter(t)

	// save
	w := do(g, http.MethodPost, "/save-resume", resumeBody)
	require.Equal(t, http.StatusOK, w.Code)
	var saved map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	id := saved["resume_id"]
	require.NotEmpty(t, id)
	assert.Equal(t, "Resume saved successfully", saved["message"])

	// get
	w = do(g, http.MethodGet, "/resume/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got resume.StoredResume
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "A", got.Data.PersonalInfo.Name)
	assert.Equal(t, []string{"Go", "Python"}, got.Data.Skills)
	assert.Equal(t, "Awards", got.Data.CustomSections[0].Title)
	assert.False(t, got.CreatedAt.IsZero())

	// list
	w = do(g, http.MethodGet, "/resumes", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Resumes map[string]resume.Summary `json:"resumes"`
		Count   int                       `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, "A", list.Resumes[id].PersonalInfo.Name)

	// delete
	w = do(g, http.MethodDelete, "/resume/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)

	// gone
	w = do(g, http.MethodGet, "/resume/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Resume not found")
	w = do(g, http.MethodDelete, "/resume/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResumeHandler_SaveWithoutCustomSections(t *testing.T) {
	g, svc := newRouter(t)
	body := `{"personal_info":{"name":"B","email":"b@example.com","phone":"1"},"summary":"","experience":[],"education":[],"skills":[]}`
	w := do(g, http.MethodPost, "/save-resume", body)
	require.Equal(t, http.StatusOK, w.Code)

	var saved map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	rec, err := svc.Get(context.Background(), saved["resume_id"])
	require.NoError(t, err)
	assert.NotNil(t, rec.Data.CustomSections)
	assert.Empty(t, rec.Data.CustomSections)
}

func TestResumeHandler_ValidationErrors(t *testing.T) {
	g, _ := newRouter(t)

	w := do(g, http.MethodPost, "/save-resume", `{"summary":"only a summary"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "personal_info")

	w = do(g, http.MethodPost, "/save-resume", `not json`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// nothing was stored
	w = do(g, http.MethodGet, "/resumes", "")
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestResumeHandler_UnknownIDs(t *testing.T) {
	g, _ := newRouter(t)
	for _, id := range []string{"does-not-exist", "00000000-0000-4000-8000-000000000000", "..%2F..%2Fetc%2Fpasswd"} {
		assert.Equal(t, http.StatusNotFound, do(g, http.MethodGet, "/resume/"+id, "").Code, id)
		assert.Equal(t, http.StatusNotFound, do(g, http.MethodDelete, "/resume/"+id, "").Code, id)
	}
}

type failingService struct{ service.Service }

func (failingService) Save(context.Context, resume.Resume) (string, error) {
	return "", errors.New("disk full: /var/data/resume_x.json")
}

func (failingService) List(context.Context) (map[string]resume.Summary, error) {
	return nil, errors.New("permission denied: /var/data")
}

func TestResumeHandler_InternalErrorsAreGeneric(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	RegisterResumeRoutes(g, failingService{})

	w := do(g, http.MethodPost, "/save-resume", resumeBody)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "disk full")
	assert.Contains(t, w.Body.String(), "internal server error")

	w = do(g, http.MethodGet, "/resumes", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "/var/data")
}
