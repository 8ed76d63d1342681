package contracts

import (
	"context"
	"time"
)

// ResponseReceivedEvent is published after a public-link submission persists.
// Downstream consumers (notification delivery) live outside this service.
type ResponseReceivedEvent struct {
	ResponseID      string    `json:"response_id"`
	PublicLinkID    string    `json:"public_link_id"`
	QuestionnaireID string    `json:"questionnaire_id"`
	PatientID       string    `json:"patient_id"`
	PractitionerID  string    `json:"practitioner_id"`
	CompletedAt     time.Time `json:"completed_at"`
}

type NotificationQueue interface {
	PublishResponseReceived(ctx context.Context, event *ResponseReceivedEvent) error
}
