package models

import "time"

// PublicLink binds an unguessable token to one questionnaire+patient pair.
// IsUsed is written false at creation and never consulted afterwards:
// whether a QuestionnaireResponse exists for the link is the single source
// of truth for "already answered".
type PublicLink struct {
	ID              string     `json:"id" bson:"_id,omitempty"`
	Token           string     `json:"token" bson:"token"`
	QuestionnaireID string     `json:"questionnaire_id" bson:"questionnaireId"`
	PatientID       string     `json:"patient_id" bson:"patientId"`
	PractitionerID  string     `json:"practitioner_id" bson:"practitionerId"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty" bson:"expiresAt,omitempty"`
	IsUsed          bool       `json:"is_used" bson:"isUsed"`
	TimeModel       `bson:",inline"`
}

// Expired reports whether the link's validity window has passed. A nil
// ExpiresAt never expires.
func (l *PublicLink) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && l.ExpiresAt.Before(now)
}
