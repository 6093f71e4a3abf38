package interview

import (
	"fmt"

	"github.com/interview-hub/interview-hub/internal/models"
)

// UpdateDetailRequest is the validated shape of a detail update.
type UpdateDetailRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	StatusCode  string `json:"statusCode" binding:"required"`
}

// BuildPatch diffs the requested values against the current interview and
// returns the changed columns only. An interview without its status relation
// loaded is a data-integrity problem, not a user error.
func BuildPatch(current *models.Interview, request UpdateDetailRequest) (map[string]interface{}, error) {
	if current.Status.Code == "" {
		return nil, fmt.Errorf("interview %s has no status relation loaded", current.ID)
	}

	patch := make(map[string]interface{})

	if request.Title != current.Title {
		patch["title"] = request.Title
	}

	if request.Description != current.Description {
		patch["description"] = request.Description
	}

	if request.StatusCode != current.Status.Code {
		patch["master_interview_status_code"] = request.StatusCode
	}

	return patch, nil
}
