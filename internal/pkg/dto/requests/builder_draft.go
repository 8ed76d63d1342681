package requests

import "vitalia-service/internal/app/models"

type ReplaceBuilderDraft struct {
	Questions     []models.Question         `json:"questions"`
	Questionnaire models.DraftQuestionnaire `json:"questionnaire"`
}

type AppendBuilderQuestions struct {
	Questions []models.Question `json:"questions" validate:"required,min=1"`
}
