package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/jordan/career-agent/internal/skills"
	"github.com/jordan/career-agent/internal/types"
)

// maxResumeSize caps uploaded resume files at 5 MB.
const maxResumeSize = 5 << 20

// allowedResumeExtensions lists the upload types the service parses as
// plain text.
var allowedResumeExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

// handleFindJobs matches an explicit skill list against the corpus.
func (s *Server) handleFindJobs(w http.ResponseWriter, r *http.Request) {
	var req types.FindJobsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Please provide a list of skills.")
		return
	}

	report, err := s.planner.MatchAndPlan(r.Context(), skills.NewSet(req.Skills...), req.Title)
	if err != nil {
		log.Printf("find_jobs failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "An error occurred: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleAnalyzeSkills extracts skills from an uploaded resume and runs the
// full match-and-plan pipeline on them.
func (s *Server) handleAnalyzeSkills(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxResumeSize)
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No resume file provided.")
		return
	}
	defer func() { _ = file.Close() }()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedResumeExtensions[ext] {
		s.errorResponse(w, http.StatusBadRequest, "File type not allowed.")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read resume file: "+err.Error())
		return
	}

	resumeSkills, err := s.extractor.Skills(r.Context(), string(content))
	if err != nil {
		log.Printf("analyze_skills extraction failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "An error occurred: "+err.Error())
		return
	}

	report, err := s.planner.MatchAndPlan(r.Context(), resumeSkills, r.FormValue("title"))
	if err != nil {
		log.Printf("analyze_skills planning failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "An error occurred: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleLearningResources suggests learning resources for one skill.
func (s *Server) handleLearningResources(w http.ResponseWriter, r *http.Request) {
	var req types.LearningResourcesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Please provide a skill to search for.")
		return
	}

	resources, err := s.planner.ResourcesForSkill(r.Context(), req.Skill)
	if err != nil {
		log.Printf("learning_resources failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "An error occurred: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.LearningResourcesResponse{
		Status:    types.StatusSuccess,
		Resources: resources,
	})
}
