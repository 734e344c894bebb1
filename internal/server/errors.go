// Package server provides the HTTP REST API for the career agent.
package server

import (
	"errors"
	"net/http"

	"github.com/jordan/career-agent/internal/extract"
	"github.com/jordan/career-agent/internal/planner"
)

// ErrValidation indicates request validation failure at the API boundary.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Reasoning-service failures are upstream errors, not client mistakes.
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var extractionErr *extract.ExtractionError
	if errors.As(err, &extractionErr) {
		return http.StatusBadGateway
	}

	var planErr *planner.PlanError
	if errors.As(err, &planErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
