package services

import (
	"testing"

	"github.com/samber/lo"
	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/fault"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
)

func questionByType(t *testing.T, survey models.Survey, questionType string) models.SurveyQuestion {
	t.Helper()
	question, ok := lo.Find(survey.Questions, func(item models.SurveyQuestion) bool {
		return item.Type == questionType
	})
	if !ok {
		t.Fatalf("survey has no %s question", questionType)
	}
	return question
}

func countResponses(t *testing.T, surveyId uint) int64 {
	t.Helper()
	var count int64
	if err := database.C.Model(&models.SurveyResponse{}).
		Where("survey_id = ?", surveyId).
		Count(&count).Error; err != nil {
		t.Fatalf("unable to count responses: %v", err)
	}
	return count
}

func TestSubmitResponse(t *testing.T) {
	owner := createTestAccount(t, true)
	respondent := createTestAccount(t, false)
	survey := createTestSurvey(t, owner)

	text := questionByType(t, survey, models.SurveyQuestionTypeText)
	choice := questionByType(t, survey, models.SurveyQuestionTypeMultipleChoice)

	response, err := SubmitSurveyResponse(respondent, survey.ID, []SurveyAnswerInput{
		{QuestionID: text.ID, TextAnswer: lo.ToPtr("hello")},
		{QuestionID: choice.ID, OptionID: &choice.Options[0].ID},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(response.Answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(response.Answers))
	}

	persisted, err := GetSurveyResponse(survey.ID, respondent.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, answer := range persisted.Answers {
		switch answer.QuestionID {
		case text.ID:
			if answer.TextAnswer == nil || *answer.TextAnswer != "hello" {
				t.Errorf("expected text answer to survive, got %v", answer.TextAnswer)
			}
			if answer.OptionID != nil {
				t.Errorf("text answer must not carry an option")
			}
		case choice.ID:
			if answer.OptionID == nil || *answer.OptionID != choice.Options[0].ID {
				t.Errorf("expected option answer to survive, got %v", answer.OptionID)
			}
			if answer.TextAnswer != nil {
				t.Errorf("option answer must not carry text")
			}
		default:
			t.Errorf("unexpected answer for question %d", answer.QuestionID)
		}
	}
}

func TestSubmitResponseSurveyNotFound(t *testing.T) {
	respondent := createTestAccount(t, false)

	_, err := SubmitSurveyResponse(respondent, 99999, nil)
	if !fault.IsKind(err, fault.KindNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestSubmitResponseClosedSurvey(t *testing.T) {
	owner := createTestAccount(t, true)
	respondent := createTestAccount(t, false)
	survey := createTestSurvey(t, owner)
	if _, err := CloseSurvey(owner, survey.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := questionByType(t, survey, models.SurveyQuestionTypeText)

	_, err := SubmitSurveyResponse(respondent, survey.ID, []SurveyAnswerInput{
		{QuestionID: text.ID, TextAnswer: lo.ToPtr("too late")},
	})
	if !fault.IsKind(err, fault.KindClosed) {
		t.Errorf("expected closed, got %v", err)
	}
	if got := countResponses(t, survey.ID); got != 0 {
		t.Errorf("expected no responses to persist, got %d", got)
	}
}

func TestSubmitResponseDuplicate(t *testing.T) {
	owner := createTestAccount(t, true)
	respondent := createTestAccount(t, false)
	survey := createTestSurvey(t, owner)

	text := questionByType(t, survey, models.SurveyQuestionTypeText)
	answers := []SurveyAnswerInput{
		{QuestionID: text.ID, TextAnswer: lo.ToPtr("first")},
	}

	if _, err := SubmitSurveyResponse(respondent, survey.ID, answers); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := SubmitSurveyResponse(respondent, survey.ID, answers)
	if !fault.IsKind(err, fault.KindDuplicate) {
		t.Errorf("expected duplicate, got %v", err)
	}
	if got := countResponses(t, survey.ID); got != 1 {
		t.Errorf("expected exactly one response, got %d", got)
	}
}

func TestSubmitResponseValidation(t *testing.T) {
	owner := createTestAccount(t, true)
	survey := createTestSurvey(t, owner)
	other := createTestSurvey(t, owner)

	text := questionByType(t, survey, models.SurveyQuestionTypeText)
	choice := questionByType(t, survey, models.SurveyQuestionTypeMultipleChoice)
	foreignChoice := questionByType(t, other, models.SurveyQuestionTypeMultipleChoice)

	tests := []struct {
		name    string
		answers []SurveyAnswerInput
	}{
		{
			name: "missing text answer",
			answers: []SurveyAnswerInput{
				{QuestionID: text.ID},
			},
		},
		{
			name: "empty text answer",
			answers: []SurveyAnswerInput{
				{QuestionID: text.ID, TextAnswer: lo.ToPtr("")},
			},
		},
		{
			name: "missing option",
			answers: []SurveyAnswerInput{
				{QuestionID: choice.ID},
			},
		},
		{
			name: "option of another question",
			answers: []SurveyAnswerInput{
				{QuestionID: choice.ID, OptionID: &foreignChoice.Options[0].ID},
			},
		},
		{
			name: "question of another survey",
			answers: []SurveyAnswerInput{
				{QuestionID: foreignChoice.ID, OptionID: &foreignChoice.Options[0].ID},
			},
		},
		{
			name: "valid answer next to an invalid one still fails whole",
			answers: []SurveyAnswerInput{
				{QuestionID: text.ID, TextAnswer: lo.ToPtr("fine")},
				{QuestionID: choice.ID, OptionID: &foreignChoice.Options[0].ID},
			},
		},
		{
			name: "question answered twice",
			answers: []SurveyAnswerInput{
				{QuestionID: choice.ID, OptionID: &choice.Options[0].ID},
				{QuestionID: choice.ID, OptionID: &choice.Options[1].ID},
			},
		},
		{
			name: "text question answered twice",
			answers: []SurveyAnswerInput{
				{QuestionID: text.ID, TextAnswer: lo.ToPtr("once")},
				{QuestionID: text.ID, TextAnswer: lo.ToPtr("twice")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			respondent := createTestAccount(t, false)
			_, err := SubmitSurveyResponse(respondent, survey.ID, tt.answers)
			if !fault.IsKind(err, fault.KindInvalid) {
				t.Errorf("expected invalid, got %v", err)
			}
			if got := countResponses(t, survey.ID); got != 0 {
				t.Errorf("expected nothing to persist, got %d responses", got)
			}
		})
	}
}

func TestSubmitResponsePartial(t *testing.T) {
	owner := createTestAccount(t, true)
	respondent := createTestAccount(t, false)
	survey := createTestSurvey(t, owner)

	text := questionByType(t, survey, models.SurveyQuestionTypeText)

	// The multiple choice question is left unanswered on purpose.
	response, err := SubmitSurveyResponse(respondent, survey.ID, []SurveyAnswerInput{
		{QuestionID: text.ID, TextAnswer: lo.ToPtr("just this one")},
	})
	if err != nil {
		t.Fatalf("partial responses should be accepted, got %v", err)
	}
	if len(response.Answers) != 1 {
		t.Errorf("expected a single answer, got %d", len(response.Answers))
	}
}
