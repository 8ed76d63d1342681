package routers

import (
	"vitalia-service/internal/app/delivery/http/middlewares"
	"vitalia-service/internal/app/services/core/questionbank"

	"github.com/go-chi/chi/v5"
)

func attachQuestionBankRoutes(router chi.Router, middlewares *middlewares.Middlewares, questionBankController *questionbank.QuestionBankController) {
	router.With(middlewares.Authentication).Post("/", questionBankController.CreateEntry)
	router.With(middlewares.Authentication).Get("/", questionBankController.FindEntries)
	router.With(middlewares.Authentication).Put("/{question_bank_id}", questionBankController.UpdateEntry)
	router.With(middlewares.Authentication).Delete("/{question_bank_id}", questionBankController.DeleteEntryByID)
}
