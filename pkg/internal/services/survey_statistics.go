package services

import (
	"sort"

	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/fault"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
)

// Page size used when a caller asks for a paginated view of text answers.
const SurveyTextAnswerPageSize = 5

// PageTextAnswers cuts one display page out of a text answer list. Pages
// start at one; out of range pages come back empty.
func PageTextAnswers(answers []string, page int) []string {
	start := (page - 1) * SurveyTextAnswerPageSize
	if page < 1 || start >= len(answers) {
		return nil
	}
	end := start + SurveyTextAnswerPageSize
	if end > len(answers) {
		end = len(answers)
	}
	return answers[start:end]
}

type SurveyOptionCount struct {
	OptionID uint   `json:"option_id"`
	Text     string `json:"text"`
	Count    int64  `json:"count"`
}

type SurveyQuestionStatistics struct {
	QuestionID uint   `json:"question_id"`
	Text       string `json:"text"`
	Type       string `json:"type"`

	// TextAnswers carries every submitted answer of a text question,
	// oldest first, without aggregation.
	TextAnswers []string `json:"text_answers,omitempty"`

	// Options carries one entry per option of a multiple choice question,
	// zero counts included.
	Options []SurveyOptionCount `json:"options,omitempty"`
}

type SurveyStatistics struct {
	SurveyID       uint                       `json:"survey_id"`
	TotalResponses int64                      `json:"total_responses"`
	Questions      []SurveyQuestionStatistics `json:"questions"`
}

// GetSurveyStatistics recomputes the tallies of a survey from committed data.
// Nothing is cached: survey audiences are small and exact display-time
// consistency is not required.
//
// Options come back in declaration order; pass ranked to sort them by
// descending count instead.
func GetSurveyStatistics(surveyId uint, ranked bool) (SurveyStatistics, error) {
	var stats SurveyStatistics

	survey, err := GetSurvey(surveyId)
	if err != nil {
		return stats, err
	}

	stats.SurveyID = survey.ID
	if err := database.C.Model(&models.SurveyResponse{}).
		Where("survey_id = ?", survey.ID).
		Count(&stats.TotalResponses).Error; err != nil {
		return stats, fault.Internal("unable to count survey responses", err)
	}

	for _, question := range survey.Questions {
		entry := SurveyQuestionStatistics{
			QuestionID: question.ID,
			Text:       question.Text,
			Type:       question.Type,
		}

		switch question.Type {
		case models.SurveyQuestionTypeText:
			var answers []string
			if err := database.C.Model(&models.SurveyAnswer{}).
				Where("question_id = ? AND text_answer IS NOT NULL", question.ID).
				Order("id ASC").
				Pluck("text_answer", &answers).Error; err != nil {
				return stats, fault.Internal("unable to list text answers", err)
			}
			entry.TextAnswers = answers
		case models.SurveyQuestionTypeMultipleChoice:
			var rows []struct {
				OptionID uint
				Total    int64
			}
			if err := database.C.Model(&models.SurveyAnswer{}).
				Select("option_id, COUNT(*) AS total").
				Where("question_id = ? AND option_id IS NOT NULL", question.ID).
				Group("option_id").
				Scan(&rows).Error; err != nil {
				return stats, fault.Internal("unable to tally options", err)
			}

			totals := make(map[uint]int64, len(rows))
			for _, row := range rows {
				totals[row.OptionID] = row.Total
			}

			for _, option := range question.Options {
				entry.Options = append(entry.Options, SurveyOptionCount{
					OptionID: option.ID,
					Text:     option.Text,
					Count:    totals[option.ID],
				})
			}

			if ranked {
				sort.SliceStable(entry.Options, func(i, j int) bool {
					return entry.Options[i].Count > entry.Options[j].Count
				})
			}
		}

		stats.Questions = append(stats.Questions, entry)
	}

	return stats, nil
}
