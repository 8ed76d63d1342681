package models

import "time"

// QuestionnaireResponse is created exactly once per PublicLink and never
// updated. CompletedAt is stamped at insert time; its presence, not a flag,
// is what "answered" means.
type QuestionnaireResponse struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	PublicLinkID    string    `json:"public_link_id" bson:"publicLinkId"`
	QuestionnaireID string    `json:"questionnaire_id" bson:"questionnaireId"`
	PatientID       string    `json:"patient_id" bson:"patientId"`
	Answers         []Answer  `json:"answers" bson:"answers"`
	CompletedAt     time.Time `json:"completed_at" bson:"completedAt"`
	TimeModel       `bson:",inline"`
}
