package interview

import (
	"testing"

	"github.com/interview-hub/interview-hub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func currentInterview() *models.Interview {
	return &models.Interview{
		Title:       "A",
		Description: "B",
		StatusCode:  models.StatusCodeTodo,
		Status: models.MasterInterviewStatus{
			Code:  models.StatusCodeTodo,
			Title: "TODO",
		},
	}
}

func TestBuildPatch(t *testing.T) {
	tests := []struct {
		name    string
		request UpdateDetailRequest
		want    map[string]interface{}
	}{
		{
			name:    "no changes",
			request: UpdateDetailRequest{Title: "A", Description: "B", StatusCode: models.StatusCodeTodo},
			want:    map[string]interface{}{},
		},
		{
			name:    "description only",
			request: UpdateDetailRequest{Title: "A", Description: "C", StatusCode: models.StatusCodeTodo},
			want:    map[string]interface{}{"description": "C"},
		},
		{
			name:    "status only",
			request: UpdateDetailRequest{Title: "A", Description: "B", StatusCode: models.StatusCodeDone},
			want:    map[string]interface{}{"master_interview_status_code": models.StatusCodeDone},
		},
		{
			name:    "all fields",
			request: UpdateDetailRequest{Title: "X", Description: "Y", StatusCode: models.StatusCodeInProgress},
			want: map[string]interface{}{
				"title":                        "X",
				"description":                  "Y",
				"master_interview_status_code": models.StatusCodeInProgress,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch, err := BuildPatch(currentInterview(), tt.request)
			require.NoError(t, err)
			assert.Equal(t, tt.want, patch)
		})
	}
}

func TestBuildPatchRequiresStatusRelation(t *testing.T) {
	current := currentInterview()
	current.Status = models.MasterInterviewStatus{}

	_, err := BuildPatch(current, UpdateDetailRequest{Title: "A", Description: "B", StatusCode: models.StatusCodeTodo})
	assert.Error(t, err)
}
