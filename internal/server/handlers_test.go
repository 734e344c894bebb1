package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/career-agent/internal/extract"
	"github.com/jordan/career-agent/internal/planner"
	"github.com/jordan/career-agent/internal/skills"
	"github.com/jordan/career-agent/internal/types"
)

func successReport() *types.MatchReport {
	return &types.MatchReport{
		Status: types.StatusSuccess,
		Matches: []types.JobMatch{
			{
				JobID:      1,
				Title:      "Data Scientist",
				Company:    "TechCorp",
				MatchScore: 50,
				SkillGaps:  []string{"sql"},
				LearningPlan: types.LearningPlan{
					{Skill: "sql", Suggestion: "The Complete SQL Bootcamp"},
				},
			},
		},
	}
}

func doRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)
	return w
}

func TestHandleFindJobs_Success(t *testing.T) {
	p := &fakePlanner{report: successReport()}
	s := newTestServer(&fakeExtractor{}, p)

	body := `{"skills": ["Python"], "title": "scientist"}`
	req := httptest.NewRequest(http.MethodPost, "/api/find_jobs", strings.NewReader(body))
	w := doRequest(s, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var report types.MatchReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "Success", report.Status)
	require.Len(t, report.Matches, 1)
	assert.Equal(t, []string{"sql"}, report.Matches[0].SkillGaps)

	// The handler normalizes before handing off to the planner.
	assert.True(t, p.lastSet.Has("python"))
	assert.Equal(t, "scientist", p.lastTitle)
}

func TestHandleFindJobs_InvalidBody(t *testing.T) {
	s := newTestServer(&fakeExtractor{}, &fakePlanner{})

	req := httptest.NewRequest(http.MethodPost, "/api/find_jobs", strings.NewReader("{not json"))
	w := doRequest(s, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Error", resp["status"])
}

func TestHandleFindJobs_MissingSkills(t *testing.T) {
	s := newTestServer(&fakeExtractor{}, &fakePlanner{})

	req := httptest.NewRequest(http.MethodPost, "/api/find_jobs", strings.NewReader(`{"skills": []}`))
	w := doRequest(s, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["report"], "list of skills")
}

func TestHandleFindJobs_PlannerFailure(t *testing.T) {
	s := newTestServer(&fakeExtractor{}, &fakePlanner{err: &planner.PlanError{Message: "all plan calls failed"}})

	req := httptest.NewRequest(http.MethodPost, "/api/find_jobs", strings.NewReader(`{"skills": ["go"]}`))
	w := doRequest(s, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func multipartResume(t *testing.T, filename, content string, extraFields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)

	for key, value := range extraFields {
		require.NoError(t, mw.WriteField(key, value))
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestHandleAnalyzeSkills_Success(t *testing.T) {
	extractor := &fakeExtractor{set: skills.NewSet("python", "sql")}
	p := &fakePlanner{report: successReport()}
	s := newTestServer(extractor, p)

	body, contentType := multipartResume(t, "resume.txt", "Ten years of Python and SQL.", map[string]string{"title": "engineer"})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze_skills", body)
	req.Header.Set("Content-Type", contentType)
	w := doRequest(s, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ten years of Python and SQL.", extractor.lastResume)
	assert.Equal(t, "engineer", p.lastTitle)
	assert.True(t, p.lastSet.Has("python"))
}

func TestHandleAnalyzeSkills_NoFile(t *testing.T) {
	s := newTestServer(&fakeExtractor{}, &fakePlanner{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze_skills", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := doRequest(s, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["report"], "No resume file provided")
}

func TestHandleAnalyzeSkills_DisallowedExtension(t *testing.T) {
	s := newTestServer(&fakeExtractor{}, &fakePlanner{})

	body, contentType := multipartResume(t, "resume.exe", "binary", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze_skills", body)
	req.Header.Set("Content-Type", contentType)
	w := doRequest(s, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["report"], "File type not allowed")
}

func TestHandleAnalyzeSkills_ExtractionFailure(t *testing.T) {
	extractor := &fakeExtractor{err: &extract.ExtractionError{Message: "reasoning service error"}}
	s := newTestServer(extractor, &fakePlanner{})

	body, contentType := multipartResume(t, "resume.txt", "resume text", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze_skills", body)
	req.Header.Set("Content-Type", contentType)
	w := doRequest(s, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Error", resp["status"])
}

func TestHandleLearningResources_Success(t *testing.T) {
	p := &fakePlanner{resources: []types.Resource{
		{Skill: "sql", Suggestion: "Intro to SQL"},
		{Skill: "sql", Suggestion: "Advanced SQL"},
		{Skill: "sql", Suggestion: "SQL Certification"},
	}}
	s := newTestServer(&fakeExtractor{}, p)

	req := httptest.NewRequest(http.MethodPost, "/api/learning_resources", strings.NewReader(`{"skill": "sql"}`))
	w := doRequest(s, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.LearningResourcesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Success", resp.Status)
	assert.Len(t, resp.Resources, 3)
	assert.Equal(t, "sql", p.lastSkill)
}

func TestHandleLearningResources_MissingSkill(t *testing.T) {
	s := newTestServer(&fakeExtractor{}, &fakePlanner{})

	req := httptest.NewRequest(http.MethodPost, "/api/learning_resources", strings.NewReader(`{}`))
	w := doRequest(s, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["report"], "skill")
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(&fakeExtractor{}, &fakePlanner{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := doRequest(s, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestMiddleware_CORSPreflight(t *testing.T) {
	s := newTestServer(&fakeExtractor{}, &fakePlanner{})

	req := httptest.NewRequest(http.MethodOptions, "/api/find_jobs", nil)
	w := doRequest(s, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMiddleware_RequestIDHeader(t *testing.T) {
	s := newTestServer(&fakeExtractor{}, &fakePlanner{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := doRequest(s, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
