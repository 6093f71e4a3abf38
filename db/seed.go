package db

import (
	"errors"
	"log"

	"github.com/interview-hub/interview-hub/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedMasterStatuses ensures the static status lookup rows exist. Safe to run
// on every start.
func SeedMasterStatuses(conn *gorm.DB) error {
	statuses := []models.MasterInterviewStatus{
		{Code: models.StatusCodeTodo, Title: "TODO"},
		{Code: models.StatusCodeInProgress, Title: "In Progress"},
		{Code: models.StatusCodeDone, Title: "Done"},
	}

	for _, status := range statuses {
		var existing models.MasterInterviewStatus

		err := conn.Where("code = ?", status.Code).First(&existing).Error

		if err == nil {
			continue
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := conn.Create(&status).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedDatabase provisions demo users and interviews. Skipped when users
// already exist, so it is safe to leave SEED_DB=true across restarts.
func SeedDatabase(conn *gorm.DB) error {
	var count int64

	if err := conn.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Users already exist, skipping seeding")
		return nil
	}

	password, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	if err != nil {
		return err
	}

	users := []struct {
		Name        string
		Email       string
		AccountType string
		Department  string
		Position    string
	}{
		{"Admin User", "admin@example.com", models.AccountTypeAdmin, "Engineering", "System Administrator"},
		{"HR Manager", "hr@example.com", models.AccountTypeHR, "Human Resources", "HR Manager"},
		{"John Interviewer", "interviewer@example.com", models.AccountTypeInterviewer, "Engineering", "Senior Engineer"},
		{"Jane Candidate", "candidate@example.com", models.AccountTypeCandidate, "", ""},
	}

	for _, seed := range users {
		user := models.User{
			Name:     seed.Name,
			Email:    seed.Email,
			Password: string(password),
			IsActive: true,
			Account: &models.UserAccount{
				AccountType: seed.AccountType,
				Department:  seed.Department,
				Position:    seed.Position,
				IsActive:    true,
			},
		}

		if err := conn.Create(&user).Error; err != nil {
			return err
		}

		log.Printf("Seeded user %s (%s)", user.Email, seed.AccountType)
	}

	var admin models.User

	if err := conn.Where("email = ?", "admin@example.com").First(&admin).Error; err != nil {
		return err
	}

	interviews := []models.Interview{
		{
			Title:           "Frontend Developer at Acme",
			Description:     "Technical interview focusing on algorithm and data structure knowledge.",
			StatusCode:      models.StatusCodeTodo,
			CreatedByUserID: admin.ID,
		},
		{
			Title:           "Backend Developer at Initech",
			Description:     "System design interview for senior engineering position.",
			StatusCode:      models.StatusCodeInProgress,
			CreatedByUserID: admin.ID,
		},
		{
			Title:           "Product Manager at Globex",
			Description:     "Behavioral interview to assess cultural fit and soft skills.",
			StatusCode:      models.StatusCodeDone,
			CreatedByUserID: admin.ID,
		},
	}

	for i := range interviews {
		if err := conn.Create(&interviews[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d interviews", len(interviews))

	return nil
}
