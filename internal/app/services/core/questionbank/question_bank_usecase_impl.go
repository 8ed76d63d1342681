package questionbank

import (
	"context"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/dto/responses"
	"vitalia-service/internal/pkg/exceptions"
	"vitalia-service/internal/pkg/utils"
)

type questionBankUsecase struct {
	QuestionBankRepository QuestionBankRepository
}

func NewQuestionBankUsecase(questionBankRepository QuestionBankRepository) QuestionBankUsecase {
	return &questionBankUsecase{
		QuestionBankRepository: questionBankRepository,
	}
}

func (uc *questionBankUsecase) CreateEntry(ctx context.Context, practitionerID string, request *requests.CreateQuestionBankEntry) (*models.QuestionBankEntry, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if fieldErrors := models.ValidateQuestion(&request.Question); len(fieldErrors) > 0 {
		return nil, exceptions.ErrQuestionnaireValidation(fieldErrors)
	}

	entry := &models.QuestionBankEntry{
		OwnerID:  practitionerID,
		Category: request.Category,
		Question: request.Question,
	}
	entry.InitTimestamps()

	entryID, err := uc.QuestionBankRepository.CreateEntry(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = entryID

	return entry, nil
}

func (uc *questionBankUsecase) FindEntries(ctx context.Context, practitionerID string, request *requests.ListQuestionBank) ([]models.QuestionBankEntry, *responses.Pagination, error) {
	entries, total, err := uc.QuestionBankRepository.FindAll(ctx, practitionerID, request)
	if err != nil {
		return nil, nil, err
	}
	if entries == nil {
		entries = []models.QuestionBankEntry{}
	}

	pagination := utils.BuildPaginationResponse(total, request.Pagination.Page, request.Pagination.PageSize, "/question-bank")
	return entries, pagination, nil
}

func (uc *questionBankUsecase) UpdateEntry(ctx context.Context, practitionerID, entryID string, request *requests.UpdateQuestionBankEntry) (*models.QuestionBankEntry, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if fieldErrors := models.ValidateQuestion(&request.Question); len(fieldErrors) > 0 {
		return nil, exceptions.ErrQuestionnaireValidation(fieldErrors)
	}

	entry, err := uc.QuestionBankRepository.FindByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	// System-owned entries are read-only for practitioners.
	if entry == nil || entry.SystemOwned() || entry.OwnerID != practitionerID {
		return nil, exceptions.ErrQuestionBankEntryNotFound(nil)
	}

	entry.Category = request.Category
	entry.Question = request.Question

	if err := uc.QuestionBankRepository.UpdateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (uc *questionBankUsecase) DeleteEntryByID(ctx context.Context, practitionerID, entryID string) error {
	entry, err := uc.QuestionBankRepository.FindByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry == nil || entry.SystemOwned() || entry.OwnerID != practitionerID {
		return exceptions.ErrQuestionBankEntryNotFound(nil)
	}
	return uc.QuestionBankRepository.DeleteEntry(ctx, entryID)
}
