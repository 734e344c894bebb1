package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jordan/career-agent/internal/extract"
	"github.com/jordan/career-agent/internal/planner"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ErrValidation{Message: "bad field"}, http.StatusBadRequest},
		{"extraction", &extract.ExtractionError{Message: "remote error"}, http.StatusBadGateway},
		{"planning", &planner.PlanError{Message: "all failed"}, http.StatusBadGateway},
		{"wrapped extraction", fmt.Errorf("context: %w", &extract.ExtractionError{Message: "x"}), http.StatusBadGateway},
		{"unknown", errors.New("mystery"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
