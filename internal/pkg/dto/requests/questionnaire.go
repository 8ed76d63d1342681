package requests

import "vitalia-service/internal/app/models"

type CreateQuestionnaire struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Questions   []models.Question `json:"questions"`
}

type UpdateQuestionnaire struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Questions   []models.Question `json:"questions"`
}

type ListQuestionnaires struct {
	Search     string
	Pagination *Pagination
}
