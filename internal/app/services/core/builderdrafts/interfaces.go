package builderdrafts

import (
	"context"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/dto/requests"
)

type BuilderDraftUsecase interface {
	GetDraft(ctx context.Context, practitionerID string) (*models.BuilderDraft, error)
	ReplaceDraft(ctx context.Context, practitionerID string, request *requests.ReplaceBuilderDraft) (*models.BuilderDraft, error)
	AppendQuestions(ctx context.Context, practitionerID string, request *requests.AppendBuilderQuestions) (*models.BuilderDraft, error)
	ClearDraft(ctx context.Context, practitionerID string) error
}
