package responses

import "vitalia-service/internal/app/models"

// ResponseSummary aggregates all responses of one questionnaire.
type ResponseSummary struct {
	QuestionnaireID string            `json:"questionnaire_id"`
	ResponseCount   int               `json:"response_count"`
	Questions       []QuestionSummary `json:"questions"`
}

type QuestionSummary struct {
	QuestionID   string              `json:"question_id"`
	QuestionType models.QuestionType `json:"question_type"`
	QuestionText string              `json:"question_text"`
	AnswerCount  int                 `json:"answer_count"`

	// radio / checkbox / yes_no / complaint pickers
	ValueCounts map[string]int `json:"value_counts,omitempty"`

	// scale / slider
	Numeric *NumericSummary `json:"numeric,omitempty"`
}

type NumericSummary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}
