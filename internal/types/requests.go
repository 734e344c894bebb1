package types

import "github.com/go-playground/validator/v10"

// FindJobsRequest is the body for POST /api/find_jobs.
type FindJobsRequest struct {
	Skills []string `json:"skills" validate:"required,min=1,dive,min=1"`
	Title  string   `json:"title,omitempty"`
}

// LearningResourcesRequest is the body for POST /api/learning_resources.
type LearningResourcesRequest struct {
	Skill string `json:"skill" validate:"required,min=1"`
}

// LearningResourcesResponse is the body returned by POST /api/learning_resources.
type LearningResourcesResponse struct {
	Status    string     `json:"status"`
	Report    string     `json:"report,omitempty"`
	Resources []Resource `json:"resources"`
}

// Validate validates the FindJobsRequest using the validator.
func (r *FindJobsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LearningResourcesRequest using the validator.
func (r *LearningResourcesRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
