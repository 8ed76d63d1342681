package questionnaires

import (
	"context"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/dto/responses"
	"vitalia-service/internal/pkg/exceptions"
	"vitalia-service/internal/pkg/utils"
)

type questionnaireUsecase struct {
	QuestionnaireRepository QuestionnaireRepository
}

func NewQuestionnaireUsecase(questionnaireRepository QuestionnaireRepository) QuestionnaireUsecase {
	return &questionnaireUsecase{
		QuestionnaireRepository: questionnaireRepository,
	}
}

func (uc *questionnaireUsecase) CreateQuestionnaire(ctx context.Context, practitionerID string, request *requests.CreateQuestionnaire) (*models.Questionnaire, error) {
	questionnaire := &models.Questionnaire{
		PractitionerID: practitionerID,
		Title:          request.Title,
		Description:    request.Description,
		Questions:      request.Questions,
	}
	if fieldErrors := models.ValidateQuestionnaire(questionnaire); len(fieldErrors) > 0 {
		return nil, exceptions.ErrQuestionnaireValidation(fieldErrors)
	}
	questionnaire.InitTimestamps()

	questionnaireID, err := uc.QuestionnaireRepository.CreateQuestionnaire(ctx, questionnaire)
	if err != nil {
		return nil, err
	}
	questionnaire.ID = questionnaireID

	return questionnaire, nil
}

func (uc *questionnaireUsecase) FindQuestionnaireByID(ctx context.Context, practitionerID, questionnaireID string) (*models.Questionnaire, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, practitionerID, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}
	return questionnaire, nil
}

func (uc *questionnaireUsecase) FindQuestionnaires(ctx context.Context, practitionerID string, request *requests.ListQuestionnaires) ([]models.Questionnaire, *responses.Pagination, error) {
	questionnaires, total, err := uc.QuestionnaireRepository.FindAll(ctx, practitionerID, request)
	if err != nil {
		return nil, nil, err
	}
	if questionnaires == nil {
		questionnaires = []models.Questionnaire{}
	}

	pagination := utils.BuildPaginationResponse(total, request.Pagination.Page, request.Pagination.PageSize, "/questionnaires")
	return questionnaires, pagination, nil
}

func (uc *questionnaireUsecase) UpdateQuestionnaire(ctx context.Context, practitionerID, questionnaireID string, request *requests.UpdateQuestionnaire) (*models.Questionnaire, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, practitionerID, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}

	questionnaire.Title = request.Title
	questionnaire.Description = request.Description
	questionnaire.Questions = request.Questions

	if fieldErrors := models.ValidateQuestionnaire(questionnaire); len(fieldErrors) > 0 {
		return nil, exceptions.ErrQuestionnaireValidation(fieldErrors)
	}

	if err := uc.QuestionnaireRepository.UpdateQuestionnaire(ctx, questionnaire); err != nil {
		return nil, err
	}
	return questionnaire, nil
}

func (uc *questionnaireUsecase) DeleteQuestionnaireByID(ctx context.Context, practitionerID, questionnaireID string) error {
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, practitionerID, questionnaireID)
	if err != nil {
		return err
	}
	if questionnaire == nil {
		return exceptions.ErrQuestionnaireNotFound(nil)
	}
	return uc.QuestionnaireRepository.SoftDeleteQuestionnaire(ctx, practitionerID, questionnaireID)
}
