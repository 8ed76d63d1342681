package questionnaireresponses

import (
	"context"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/dto/responses"
)

type ResponseRepository interface {
	// CreateResponse inserts a response. The duplicate return is true when
	// the unique index on publicLinkId rejected the insert because another
	// response for the same link already exists.
	CreateResponse(ctx context.Context, response *models.QuestionnaireResponse) (responseID string, duplicate bool, err error)
	FindByPublicLinkID(ctx context.Context, publicLinkID string) (*models.QuestionnaireResponse, error)
	FindByID(ctx context.Context, responseID string) (*models.QuestionnaireResponse, error)
	FindAllByQuestionnaireID(ctx context.Context, questionnaireID string, pagination *requests.Pagination) ([]models.QuestionnaireResponse, int, error)
	FindAllForSummary(ctx context.Context, questionnaireID string) ([]models.QuestionnaireResponse, error)
}

type ResponseUsecase interface {
	FindResponses(ctx context.Context, practitionerID, questionnaireID string, pagination *requests.Pagination) ([]models.QuestionnaireResponse, *responses.Pagination, error)
	FindResponseByID(ctx context.Context, practitionerID, responseID string) (*models.QuestionnaireResponse, error)
	SummarizeResponses(ctx context.Context, practitionerID, questionnaireID string) (*responses.ResponseSummary, error)
}
