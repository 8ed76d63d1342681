package questionnaireresponses

import (
	"context"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/app/services/core/questionnaires"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/dto/responses"
	"vitalia-service/internal/pkg/exceptions"
	"vitalia-service/internal/pkg/utils"
)

type responseUsecase struct {
	ResponseRepository      ResponseRepository
	QuestionnaireRepository questionnaires.QuestionnaireRepository
}

func NewResponseUsecase(
	responseRepository ResponseRepository,
	questionnaireRepository questionnaires.QuestionnaireRepository,
) ResponseUsecase {
	return &responseUsecase{
		ResponseRepository:      responseRepository,
		QuestionnaireRepository: questionnaireRepository,
	}
}

func (uc *responseUsecase) FindResponses(ctx context.Context, practitionerID, questionnaireID string, pagination *requests.Pagination) ([]models.QuestionnaireResponse, *responses.Pagination, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, practitionerID, questionnaireID)
	if err != nil {
		return nil, nil, err
	}
	if questionnaire == nil {
		return nil, nil, exceptions.ErrQuestionnaireNotFound(nil)
	}

	result, total, err := uc.ResponseRepository.FindAllByQuestionnaireID(ctx, questionnaireID, pagination)
	if err != nil {
		return nil, nil, err
	}
	if result == nil {
		result = []models.QuestionnaireResponse{}
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, "/questionnaires/"+questionnaireID+"/responses")
	return result, paginationResponse, nil
}

func (uc *responseUsecase) FindResponseByID(ctx context.Context, practitionerID, responseID string) (*models.QuestionnaireResponse, error) {
	response, err := uc.ResponseRepository.FindByID(ctx, responseID)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, exceptions.ErrResponseNotFound(nil)
	}

	// Ownership is established through the questionnaire the response
	// belongs to.
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, practitionerID, response.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrResponseNotFound(nil)
	}
	return response, nil
}

func (uc *responseUsecase) SummarizeResponses(ctx context.Context, practitionerID, questionnaireID string) (*responses.ResponseSummary, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, practitionerID, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}

	allResponses, err := uc.ResponseRepository.FindAllForSummary(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}

	return summarize(questionnaire, allResponses), nil
}

// summarize folds every response into per-question aggregates: categorical
// types get value counts, numeric types get count/mean/min/max, the rest get
// an answer count only.
func summarize(questionnaire *models.Questionnaire, allResponses []models.QuestionnaireResponse) *responses.ResponseSummary {
	summary := &responses.ResponseSummary{
		QuestionnaireID: questionnaire.ID,
		ResponseCount:   len(allResponses),
		Questions:       make([]responses.QuestionSummary, 0, len(questionnaire.Questions)),
	}

	byQuestion := make(map[string][]models.Answer)
	for _, response := range allResponses {
		for _, answer := range response.Answers {
			byQuestion[answer.QuestionID] = append(byQuestion[answer.QuestionID], answer)
		}
	}

	for i := range questionnaire.Questions {
		question := &questionnaire.Questions[i]
		answers := byQuestion[question.ID]

		questionSummary := responses.QuestionSummary{
			QuestionID:   question.ID,
			QuestionType: question.QuestionType,
			QuestionText: question.QuestionText,
			AnswerCount:  len(answers),
		}

		switch question.QuestionType {
		case models.QuestionTypeRadio:
			counts := make(map[string]int)
			for _, answer := range answers {
				if answer.OptionID != nil {
					counts[optionLabel(question, *answer.OptionID)]++
				}
			}
			questionSummary.ValueCounts = counts

		case models.QuestionTypeCheckbox:
			counts := make(map[string]int)
			for _, answer := range answers {
				for _, optionID := range answer.Options {
					counts[optionLabel(question, optionID)]++
				}
			}
			questionSummary.ValueCounts = counts

		case models.QuestionTypeYesNo:
			counts := make(map[string]int)
			for _, answer := range answers {
				if answer.YesNo != nil {
					counts[string(*answer.YesNo)]++
				}
			}
			questionSummary.ValueCounts = counts

		case models.QuestionTypeFacialComplaints, models.QuestionTypeBodyComplaints:
			counts := make(map[string]int)
			for _, answer := range answers {
				for _, region := range answer.Regions {
					counts[region]++
				}
			}
			questionSummary.ValueCounts = counts

		case models.QuestionTypeScale, models.QuestionTypeSlider:
			questionSummary.Numeric = summarizeNumbers(answers)
		}

		summary.Questions = append(summary.Questions, questionSummary)
	}

	return summary
}

func summarizeNumbers(answers []models.Answer) *responses.NumericSummary {
	numeric := &responses.NumericSummary{}
	sum := 0.0
	for _, answer := range answers {
		if answer.Number == nil {
			continue
		}
		value := *answer.Number
		if numeric.Count == 0 || value < numeric.Min {
			numeric.Min = value
		}
		if numeric.Count == 0 || value > numeric.Max {
			numeric.Max = value
		}
		sum += value
		numeric.Count++
	}
	if numeric.Count > 0 {
		numeric.Mean = sum / float64(numeric.Count)
	}
	return numeric
}

func optionLabel(question *models.Question, optionID string) string {
	for _, option := range question.Options {
		if option.ID == optionID {
			return option.Label
		}
	}
	return optionID
}
