package responses

import (
	"time"
	"vitalia-service/internal/app/models"
)

// ResolvePublicLink is the token-scoped view a patient gets: the bound
// questionnaire, the bound patient, and the prior response if one exists so
// the caller renders "already answered" instead of the form.
type ResolvePublicLink struct {
	Questionnaire *models.Questionnaire         `json:"questionnaire"`
	Patient       *PublicPatient                `json:"patient"`
	Response      *models.QuestionnaireResponse `json:"response"`
}

// PublicPatient is the reduced patient view exposed on an unauthenticated
// link; token possession grants this much and no more.
type PublicPatient struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

type CreatedPublicLink struct {
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Reused    bool       `json:"reused"`
}

type SubmittedResponse struct {
	ID          string    `json:"id"`
	CompletedAt time.Time `json:"completed_at"`
}
