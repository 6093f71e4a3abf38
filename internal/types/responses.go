package types

import (
	"time"

	"github.com/interview-hub/interview-hub/internal/models"
)

type AccountResponse struct {
	ID          string `json:"id"`
	AccountType string `json:"accountType"`
	Department  string `json:"department,omitempty"`
	Position    string `json:"position,omitempty"`
}

type UserResponse struct {
	ID       string           `json:"id"`
	Email    string           `json:"email"`
	Name     string           `json:"name"`
	Accounts *AccountResponse `json:"accounts"`
}

func NewUserResponse(user *models.User) UserResponse {
	response := UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}

	if user.Account != nil {
		response.Accounts = &AccountResponse{
			ID:          user.Account.ID,
			AccountType: user.Account.AccountType,
			Department:  user.Account.Department,
			Position:    user.Account.Position,
		}
	}

	return response
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

type StatusResponse struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

type AuthorResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type InterviewListItem struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Status        StatusResponse `json:"status"`
	CreatedByUser AuthorResponse `json:"createdByUser"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type InterviewDetailResponse struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Status        StatusResponse `json:"status"`
	CreatedByUser AuthorResponse `json:"createdByUser"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type InterviewLogListItem struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Status        StatusResponse `json:"status"`
	CreatedByUser AuthorResponse `json:"createdByUser"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type InterviewCommentListItem struct {
	ID            string         `json:"id"`
	Comment       string         `json:"comment"`
	IsViewOnly    bool           `json:"isViewOnly"`
	CreatedByUser AuthorResponse `json:"createdByUser"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
