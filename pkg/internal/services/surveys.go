package services

import (
	"errors"
	"fmt"

	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/fault"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"gorm.io/gorm"
)

type SurveyQuestionSpec struct {
	Text    string   `json:"text" validate:"required"`
	Type    string   `json:"type" validate:"required,oneof=text multiple_choice"`
	Options []string `json:"options"`
}

func GetSurvey(id uint) (models.Survey, error) {
	var survey models.Survey
	if err := database.C.
		Preload("Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("survey_questions.id ASC")
		}).
		Preload("Questions.Options", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("survey_options.id ASC")
		}).
		Preload("Account").
		Where("id = ?", id).
		First(&survey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return survey, fault.Newf(fault.KindNotFound, "survey #%d was not found", id)
		}
		return survey, fault.Internal("unable to get survey", err)
	}
	return survey, nil
}

// NewSurvey creates a survey with its questions and options in one shot.
// Only staff accounts can create surveys.
func NewSurvey(user models.Account, title, description string, questions []SurveyQuestionSpec) (models.Survey, error) {
	var survey models.Survey
	if !user.IsStaff {
		return survey, fault.Unauthorized("only staff can create surveys")
	}

	for _, question := range questions {
		switch question.Type {
		case models.SurveyQuestionTypeText:
			if len(question.Options) > 0 {
				return survey, fault.Invalid("text questions cannot have options")
			}
		case models.SurveyQuestionTypeMultipleChoice:
		default:
			return survey, fault.Newf(fault.KindInvalid, "unknown question type: %s", question.Type)
		}
	}

	survey = models.Survey{
		Title:       title,
		Description: description,
		Status:      models.SurveyStatusActive,
		AccountID:   user.ID,
	}
	for _, question := range questions {
		entry := models.SurveyQuestion{
			Text: question.Text,
			Type: question.Type,
		}
		for _, option := range question.Options {
			entry.Options = append(entry.Options, models.SurveyOption{Text: option})
		}
		survey.Questions = append(survey.Questions, entry)
	}

	if err := database.C.Create(&survey).Error; err != nil {
		return survey, fault.Internal("unable to create survey", err)
	}

	survey.Account = user
	return survey, nil
}

// CloseSurvey moves a survey from active to closed. Closing an already closed
// survey is a no-op success.
func CloseSurvey(user models.Account, id uint) (models.Survey, error) {
	survey, err := GetSurvey(id)
	if err != nil {
		return survey, err
	}

	if !user.IsStaff && survey.AccountID != user.ID {
		return survey, fault.Unauthorized("only the survey owner or staff can close it")
	}

	if survey.Status == models.SurveyStatusClosed {
		return survey, nil
	}

	survey.Status = models.SurveyStatusClosed
	if err := database.C.Model(&models.Survey{}).
		Where("id = ?", survey.ID).
		Update("status", models.SurveyStatusClosed).Error; err != nil {
		return survey, fault.Internal("unable to close survey", err)
	}

	return survey, nil
}

func EditSurvey(user models.Account, survey models.Survey) (models.Survey, error) {
	if !user.IsStaff && survey.AccountID != user.ID {
		return survey, fault.Unauthorized("only the survey owner or staff can edit it")
	}

	if err := database.C.Omit("Questions", "Responses", "Account").Save(&survey).Error; err != nil {
		return survey, fault.Internal("unable to update survey", err)
	}
	return survey, nil
}

func DeleteSurvey(user models.Account, id uint) error {
	survey, err := GetSurvey(id)
	if err != nil {
		return err
	}

	if !user.IsStaff && survey.AccountID != user.ID {
		return fault.Unauthorized("only the survey owner or staff can delete it")
	}

	return database.C.Select("Questions", "Responses").Delete(&survey).Error
}

// ListVisibleSurveys returns active surveys; staff additionally see their own
// surveys regardless of status. Newest come first.
func ListVisibleSurveys(user *models.Account, take int, offset int) ([]models.Survey, int64, error) {
	if take > 100 {
		take = 100
	}

	tx := database.C.Model(&models.Survey{})
	if user != nil && user.IsStaff {
		tx = tx.Where("status = ? OR account_id = ?", models.SurveyStatusActive, user.ID)
	} else {
		tx = tx.Where("status = ?", models.SurveyStatusActive)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("unable to count surveys: %v", err)
	}

	var surveys []models.Survey
	if err := tx.
		Preload("Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("survey_questions.id ASC")
		}).
		Preload("Questions.Options", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("survey_options.id ASC")
		}).
		Preload("Account").
		Limit(take).Offset(offset).
		Order("created_at DESC").
		Find(&surveys).Error; err != nil {
		return nil, 0, fmt.Errorf("unable to list surveys: %v", err)
	}

	return surveys, count, nil
}
