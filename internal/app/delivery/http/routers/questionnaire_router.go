package routers

import (
	"vitalia-service/internal/app/delivery/http/middlewares"
	"vitalia-service/internal/app/services/core/publiclinks"
	"vitalia-service/internal/app/services/core/questionnaireresponses"
	"vitalia-service/internal/app/services/core/questionnaires"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	questionnaireController *questionnaires.QuestionnaireController,
	publicLinkController *publiclinks.PublicLinkController,
	responseController *questionnaireresponses.ResponseController,
) {
	router.With(middlewares.Authentication).Post("/", questionnaireController.CreateQuestionnaire)
	router.With(middlewares.Authentication).Get("/", questionnaireController.FindQuestionnaires)
	router.With(middlewares.Authentication).Get("/{questionnaire_id}", questionnaireController.FindQuestionnaireByID)
	router.With(middlewares.Authentication).Put("/{questionnaire_id}", questionnaireController.UpdateQuestionnaire)
	router.With(middlewares.Authentication).Delete("/{questionnaire_id}", questionnaireController.DeleteQuestionnaireByID)

	router.With(middlewares.Authentication).Post("/{questionnaire_id}/public-link", publicLinkController.CreatePublicLink)

	router.With(middlewares.Authentication).Get("/{questionnaire_id}/responses", responseController.FindResponses)
	router.With(middlewares.Authentication).Get("/{questionnaire_id}/responses/summary", responseController.SummarizeResponses)
}
