package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindJobsRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     FindJobsRequest
		wantErr bool
	}{
		{"valid", FindJobsRequest{Skills: []string{"python"}}, false},
		{"valid with title", FindJobsRequest{Skills: []string{"python", "sql"}, Title: "engineer"}, false},
		{"missing skills", FindJobsRequest{}, true},
		{"empty skills", FindJobsRequest{Skills: []string{}}, true},
		{"empty skill entry", FindJobsRequest{Skills: []string{""}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLearningResourcesRequest_Validate(t *testing.T) {
	valid := LearningResourcesRequest{Skill: "sql"}
	assert.NoError(t, valid.Validate())

	missing := LearningResourcesRequest{}
	assert.Error(t, missing.Validate())
}
