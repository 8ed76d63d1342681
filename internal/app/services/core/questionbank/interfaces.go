package questionbank

import (
	"context"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/dto/responses"
)

type QuestionBankRepository interface {
	CreateEntry(ctx context.Context, entry *models.QuestionBankEntry) (string, error)
	FindByID(ctx context.Context, entryID string) (*models.QuestionBankEntry, error)
	FindAll(ctx context.Context, ownerID string, request *requests.ListQuestionBank) ([]models.QuestionBankEntry, int, error)
	UpdateEntry(ctx context.Context, entry *models.QuestionBankEntry) error
	DeleteEntry(ctx context.Context, entryID string) error
}

type QuestionBankUsecase interface {
	CreateEntry(ctx context.Context, practitionerID string, request *requests.CreateQuestionBankEntry) (*models.QuestionBankEntry, error)
	FindEntries(ctx context.Context, practitionerID string, request *requests.ListQuestionBank) ([]models.QuestionBankEntry, *responses.Pagination, error)
	UpdateEntry(ctx context.Context, practitionerID, entryID string, request *requests.UpdateQuestionBankEntry) (*models.QuestionBankEntry, error)
	DeleteEntryByID(ctx context.Context, practitionerID, entryID string) error
}
