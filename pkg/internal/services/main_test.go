package services

import (
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/th41ng/SocialNetwork/pkg/internal/cache"
	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}
	database.C = db

	if err := database.RunMigration(db); err != nil {
		panic(err)
	}
	if err := cache.NewStore(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

var testAccountSeq atomic.Uint64

func createTestAccount(t *testing.T, staff bool) models.Account {
	t.Helper()

	seq := testAccountSeq.Add(1)
	account := models.Account{
		Name:    fmt.Sprintf("account%d", seq),
		Nick:    fmt.Sprintf("Account %d", seq),
		Email:   fmt.Sprintf("account%d@example.com", seq),
		Role:    models.RoleAlumni,
		IsStaff: staff,
	}
	if staff {
		account.Role = models.RoleLecturer
	}

	if err := database.C.Create(&account).Error; err != nil {
		t.Fatalf("unable to create test account: %v", err)
	}
	return account
}

// createTestSurvey builds one text question and one multiple choice question
// with options A and B.
func createTestSurvey(t *testing.T, owner models.Account) models.Survey {
	t.Helper()

	survey, err := NewSurvey(owner, "Alumni feedback", "How did we do?", []SurveyQuestionSpec{
		{Text: "Any thoughts?", Type: models.SurveyQuestionTypeText},
		{Text: "Pick one", Type: models.SurveyQuestionTypeMultipleChoice, Options: []string{"A", "B"}},
	})
	if err != nil {
		t.Fatalf("unable to create test survey: %v", err)
	}
	return survey
}
