package publiclinks

import (
	"context"
	"time"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/dto/responses"
)

type PublicLinkRepository interface {
	CreatePublicLink(ctx context.Context, link *models.PublicLink) (string, error)
	FindByToken(ctx context.Context, token string) (*models.PublicLink, error)
	// FindLive returns the newest link for the pair whose validity window
	// covers now, or nil.
	FindLive(ctx context.Context, questionnaireID, patientID string, now time.Time) (*models.PublicLink, error)
}

type PublicLinkUsecase interface {
	CreatePublicLink(ctx context.Context, practitionerID, questionnaireID string, request *requests.CreatePublicLink) (*responses.CreatedPublicLink, error)
	ResolvePublicLink(ctx context.Context, token string) (*responses.ResolvePublicLink, error)
	SubmitResponse(ctx context.Context, token string, request *requests.SubmitResponse) (*responses.SubmittedResponse, error)
}
