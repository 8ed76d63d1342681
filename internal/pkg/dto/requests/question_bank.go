package requests

import "vitalia-service/internal/app/models"

type CreateQuestionBankEntry struct {
	Category string          `json:"category" validate:"omitempty,max=120"`
	Question models.Question `json:"question"`
}

type UpdateQuestionBankEntry struct {
	Category string          `json:"category" validate:"omitempty,max=120"`
	Question models.Question `json:"question"`
}

type ListQuestionBank struct {
	Category   string
	Pagination *Pagination
}
