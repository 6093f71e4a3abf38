package apperrors

import "net/http"

// Error is a domain failure with a stable machine-readable code and the
// HTTP status class the boundary should answer with. Storage failures are
// not wrapped into this type; they surface as plain errors and become 500s.
type Error struct {
	Status int
	Code   string
}

func (e *Error) Error() string {
	return e.Code
}

func Unauthorized(code string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: code}
}

func NotFound(code string) *Error {
	return &Error{Status: http.StatusNotFound, Code: code}
}

func BadRequest(code string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code}
}

var (
	ErrInvalidCredentials = Unauthorized("INVALID_CREDENTIALS")
	ErrPasswordNotMatch   = Unauthorized("PASSWORD_NOT_MATCH")
	ErrUserAlreadyLogin   = Unauthorized("USER_ALREADY_LOGIN")
	ErrInvalidToken       = Unauthorized("INVALID_TOKEN")
	ErrAuthUserNotFound   = Unauthorized("USER_NOT_FOUND")

	ErrUserNotFound             = NotFound("USER_NOT_FOUND")
	ErrInterviewNotFound        = NotFound("INTERVIEW_NOT_FOUND")
	ErrInterviewCommentNotFound = NotFound("INTERVIEW_COMMENT_NOT_FOUND")

	ErrInterviewAlreadyArchived           = BadRequest("INTERVIEW_ALREADY_ARCHIVED")
	ErrInterviewNotAllowedToUpdate        = BadRequest("INTERVIEW_NOT_ALLOWED_TO_UPDATE")
	ErrInterviewCommentNotAllowedToUpdate = BadRequest("INTERVIEW_COMMENT_NOT_ALLOWED_TO_UPDATE")
)
