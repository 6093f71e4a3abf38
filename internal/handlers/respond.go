package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interview-hub/interview-hub/internal/apperrors"
)

// respondError maps domain errors to their status and code; anything else is
// an infrastructure failure and stays a generic 500.
func respondError(ctx *gin.Context, err error) {
	var appErr *apperrors.Error

	if errors.As(err, &appErr) {
		ctx.JSON(appErr.Status, gin.H{"error": appErr.Code})
		return
	}

	log.Printf("Unhandled error: %v", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
