package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/interview-hub/interview-hub/db"
	"github.com/interview-hub/interview-hub/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// NewTestDB opens a test-scoped in-memory database with the full schema and
// the master status rows. The DSN is named after the test so parallel tests
// do not share state.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = conn.AutoMigrate(
		&models.User{},
		&models.UserAccount{},
		&models.UserSession{},
		&models.MasterInterviewStatus{},
		&models.Interview{},
		&models.InterviewLog{},
		&models.InterviewComment{},
	)
	require.NoError(t, err)

	require.NoError(t, db.SeedMasterStatuses(conn))

	return conn
}

// CreateUser inserts an active user with the given password and a default
// interviewer account.
func CreateUser(t *testing.T, conn *gorm.DB, email, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hash),
		IsActive: true,
		Account: &models.UserAccount{
			AccountType: models.AccountTypeInterviewer,
			Department:  "Engineering",
			Position:    "Engineer",
			IsActive:    true,
		},
	}

	require.NoError(t, conn.Create(&user).Error)

	return &user
}

// CreateInterview inserts an unarchived interview in TODO status.
func CreateInterview(t *testing.T, conn *gorm.DB, creatorID, title string) *models.Interview {
	t.Helper()

	record := models.Interview{
		Title:           title,
		Description:     "A test interview",
		StatusCode:      models.StatusCodeTodo,
		CreatedByUserID: creatorID,
	}

	require.NoError(t, conn.Create(&record).Error)

	return &record
}
