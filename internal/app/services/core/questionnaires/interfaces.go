package questionnaires

import (
	"context"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/dto/responses"
)

type QuestionnaireRepository interface {
	CreateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) (string, error)
	FindByID(ctx context.Context, practitionerID, questionnaireID string) (*models.Questionnaire, error)
	FindAll(ctx context.Context, practitionerID string, request *requests.ListQuestionnaires) ([]models.Questionnaire, int, error)
	UpdateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) error
	SoftDeleteQuestionnaire(ctx context.Context, practitionerID, questionnaireID string) error
}

type QuestionnaireUsecase interface {
	CreateQuestionnaire(ctx context.Context, practitionerID string, request *requests.CreateQuestionnaire) (*models.Questionnaire, error)
	FindQuestionnaireByID(ctx context.Context, practitionerID, questionnaireID string) (*models.Questionnaire, error)
	FindQuestionnaires(ctx context.Context, practitionerID string, request *requests.ListQuestionnaires) ([]models.Questionnaire, *responses.Pagination, error)
	UpdateQuestionnaire(ctx context.Context, practitionerID, questionnaireID string, request *requests.UpdateQuestionnaire) (*models.Questionnaire, error)
	DeleteQuestionnaireByID(ctx context.Context, practitionerID, questionnaireID string) error
}
