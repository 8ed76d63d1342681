package builderdrafts

import (
	"context"
	"fmt"
	"vitalia-service/internal/app/contracts"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/constvars"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/exceptions"
	"vitalia-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// builderDraftUsecase persists the in-progress questionnaire snapshot in
// Redis, one key per practitioner. The snapshot is loaded and stored whole;
// the last write wins.
type builderDraftUsecase struct {
	RedisRepository contracts.RedisRepository
}

func NewBuilderDraftUsecase(redisRepository contracts.RedisRepository) BuilderDraftUsecase {
	return &builderDraftUsecase{
		RedisRepository: redisRepository,
	}
}

func (uc *builderDraftUsecase) GetDraft(ctx context.Context, practitionerID string) (*models.BuilderDraft, error) {
	return uc.loadDraft(ctx, practitionerID)
}

func (uc *builderDraftUsecase) ReplaceDraft(ctx context.Context, practitionerID string, request *requests.ReplaceBuilderDraft) (*models.BuilderDraft, error) {
	draft := &models.BuilderDraft{
		Questions:     request.Questions,
		Questionnaire: request.Questionnaire,
		IsInitialized: true,
	}
	if draft.Questions == nil {
		draft.Questions = []models.Question{}
	}

	if err := uc.storeDraft(ctx, practitionerID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (uc *builderDraftUsecase) AppendQuestions(ctx context.Context, practitionerID string, request *requests.AppendBuilderQuestions) (*models.BuilderDraft, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	draft, err := uc.loadDraft(ctx, practitionerID)
	if err != nil {
		return nil, err
	}
	draft.IsInitialized = true

	// Every appended question gets a fresh id, so appending the same bank
	// entry twice never collides, and a sequential order after the
	// existing ones.
	nextOrder := draft.NextOrder()
	for _, question := range request.Questions {
		question.ID = uuid.New().String()
		question.Order = nextOrder
		nextOrder++
		draft.Questions = append(draft.Questions, question)
	}

	if err := uc.storeDraft(ctx, practitionerID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (uc *builderDraftUsecase) ClearDraft(ctx context.Context, practitionerID string) error {
	return uc.RedisRepository.Delete(ctx, draftKey(practitionerID))
}

func (uc *builderDraftUsecase) loadDraft(ctx context.Context, practitionerID string) (*models.BuilderDraft, error) {
	raw, err := uc.RedisRepository.Get(ctx, draftKey(practitionerID))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return &models.BuilderDraft{Questions: []models.Question{}}, nil
	}

	draft := new(models.BuilderDraft)
	if err := json.Unmarshal([]byte(raw), draft); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if draft.Questions == nil {
		draft.Questions = []models.Question{}
	}
	return draft, nil
}

func (uc *builderDraftUsecase) storeDraft(ctx context.Context, practitionerID string, draft *models.BuilderDraft) error {
	// Drafts survive until explicitly cleared or promoted to a
	// questionnaire, so no expiration.
	return uc.RedisRepository.Set(ctx, draftKey(practitionerID), draft, 0)
}

func draftKey(practitionerID string) string {
	return fmt.Sprintf(constvars.RedisKeyBuilderDraftFormat, practitionerID)
}
