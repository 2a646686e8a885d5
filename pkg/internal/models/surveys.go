package models

const (
	SurveyStatusActive = "active"
	SurveyStatusClosed = "closed"
)

const (
	SurveyQuestionTypeText           = "text"
	SurveyQuestionTypeMultipleChoice = "multiple_choice"
)

type Survey struct {
	BaseModel

	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`

	Questions []SurveyQuestion `json:"questions" gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE"`
	Responses []SurveyResponse `json:"responses,omitempty" gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE"`

	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`
}

type SurveyQuestion struct {
	BaseModel

	Text string `json:"text"`
	Type string `json:"type"`

	Options []SurveyOption `json:"options" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`

	SurveyID uint `json:"survey_id"`
}

type SurveyOption struct {
	BaseModel

	Text string `json:"text"`

	QuestionID uint `json:"question_id"`
}

type SurveyResponse struct {
	BaseModel

	Answers []SurveyAnswer `json:"answers" gorm:"foreignKey:ResponseID;constraint:OnDelete:CASCADE"`

	SurveyID  uint    `json:"survey_id" gorm:"uniqueIndex:survey_response_pair"`
	AccountID uint    `json:"account_id" gorm:"uniqueIndex:survey_response_pair"`
	Account   Account `json:"account"`
}

type SurveyAnswer struct {
	BaseModel

	TextAnswer *string `json:"text_answer"`
	OptionID   *uint   `json:"option_id"`

	ResponseID uint `json:"response_id"`
	QuestionID uint `json:"question_id"`
}
