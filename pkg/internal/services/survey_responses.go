package services

import (
	"errors"

	"github.com/samber/lo"
	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/fault"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"gorm.io/gorm"
)

// SurveyAnswerInput is one answer of a submission. Exactly one of TextAnswer
// and OptionID is used, decided by the question's type.
type SurveyAnswerInput struct {
	QuestionID uint    `json:"question_id" validate:"required"`
	TextAnswer *string `json:"text_answer"`
	OptionID   *uint   `json:"option_id"`
}

func GetSurveyResponse(surveyId uint, accountId uint) (models.SurveyResponse, error) {
	var response models.SurveyResponse
	if err := database.C.
		Preload("Answers").
		Where("survey_id = ? AND account_id = ?", surveyId, accountId).
		First(&response).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response, fault.NotFound("you have not responded to this survey")
		}
		return response, fault.Internal("unable to get survey response", err)
	}
	return response, nil
}

// SubmitSurveyResponse validates and persists one respondent's full answer
// set. Everything lands in a single transaction; the survey status and the
// one-response-per-account rule are re-checked inside it, and a unique index
// on (survey_id, account_id) backstops concurrent submissions.
//
// Questions omitted from the input are left unanswered; partial responses are
// accepted.
func SubmitSurveyResponse(user models.Account, surveyId uint, answers []SurveyAnswerInput) (models.SurveyResponse, error) {
	var response models.SurveyResponse

	survey, err := GetSurvey(surveyId)
	if err != nil {
		return response, err
	}
	if survey.Status == models.SurveyStatusClosed {
		return response, fault.Closed("survey is closed")
	}

	var count int64
	if err := database.C.Model(&models.SurveyResponse{}).
		Where("survey_id = ? AND account_id = ?", survey.ID, user.ID).
		Count(&count).Error; err != nil {
		return response, fault.Internal("unable to check for existing response", err)
	}
	if count > 0 {
		return response, fault.Duplicate("you already responded to this survey")
	}

	questions := lo.SliceToMap(survey.Questions, func(item models.SurveyQuestion) (uint, models.SurveyQuestion) {
		return item.ID, item
	})

	records := make([]models.SurveyAnswer, 0, len(answers))
	answered := make(map[uint]bool, len(answers))
	for _, answer := range answers {
		question, ok := questions[answer.QuestionID]
		if !ok {
			return response, fault.Newf(fault.KindInvalid, "question #%d does not belong to this survey", answer.QuestionID)
		}
		if answered[question.ID] {
			return response, fault.Newf(fault.KindInvalid, "question #%d is answered more than once", question.ID)
		}
		answered[question.ID] = true

		switch question.Type {
		case models.SurveyQuestionTypeText:
			if answer.TextAnswer == nil || len(*answer.TextAnswer) == 0 {
				return response, fault.Newf(fault.KindInvalid, "question #%d is missing its text answer", question.ID)
			}
			records = append(records, models.SurveyAnswer{
				QuestionID: question.ID,
				TextAnswer: answer.TextAnswer,
			})
		case models.SurveyQuestionTypeMultipleChoice:
			if answer.OptionID == nil {
				return response, fault.Newf(fault.KindInvalid, "question #%d is missing its option", question.ID)
			}
			option, ok := lo.Find(question.Options, func(item models.SurveyOption) bool {
				return item.ID == *answer.OptionID
			})
			if !ok {
				return response, fault.Newf(fault.KindInvalid, "option #%d does not belong to question #%d", *answer.OptionID, question.ID)
			}
			records = append(records, models.SurveyAnswer{
				QuestionID: question.ID,
				OptionID:   &option.ID,
			})
		}
	}

	response = models.SurveyResponse{
		SurveyID:  survey.ID,
		AccountID: user.ID,
		Answers:   records,
	}

	if err := database.C.Transaction(func(tx *gorm.DB) error {
		var current models.Survey
		if err := tx.Select("status").
			Where("id = ?", survey.ID).
			First(&current).Error; err != nil {
			return fault.Internal("unable to re-check survey status", err)
		}
		if current.Status == models.SurveyStatusClosed {
			return fault.Closed("survey is closed")
		}

		if err := tx.Create(&response).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fault.Duplicate("you already responded to this survey")
			}
			return fault.Internal("unable to save survey response", err)
		}
		return nil
	}); err != nil {
		return response, err
	}

	response.Account = user
	return response, nil
}
