package interview

import (
	"github.com/interview-hub/interview-hub/internal/apperrors"
	"github.com/interview-hub/interview-hub/internal/models"
)

func ValidateInterviewExists(interview *models.Interview) error {
	if interview == nil {
		return apperrors.ErrInterviewNotFound
	}
	return nil
}

// ValidateInterviewNotArchived rejects mutations on archived interviews.
// Archiving is terminal.
func ValidateInterviewNotArchived(interview *models.Interview) error {
	if interview.IsArchived {
		return apperrors.ErrInterviewAlreadyArchived
	}
	return nil
}

// ValidateInterviewAllowedToUpdate allows content edits by the creator only.
// Archiving deliberately has no such check.
func ValidateInterviewAllowedToUpdate(interview *models.Interview, userID string) error {
	if interview.CreatedByUserID != userID {
		return apperrors.ErrInterviewNotAllowedToUpdate
	}
	return nil
}

func ValidateCommentExists(comment *models.InterviewComment) error {
	if comment == nil {
		return apperrors.ErrInterviewCommentNotFound
	}
	return nil
}

func ValidateCommentAllowedToUpdate(comment *models.InterviewComment, userID string) error {
	if comment.CreatedByUserID != userID {
		return apperrors.ErrInterviewCommentNotAllowedToUpdate
	}
	return nil
}
