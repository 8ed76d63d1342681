package routers

import (
	"vitalia-service/internal/app/delivery/http/middlewares"
	"vitalia-service/internal/app/services/core/builderdrafts"

	"github.com/go-chi/chi/v5"
)

func attachBuilderDraftRoutes(router chi.Router, middlewares *middlewares.Middlewares, builderDraftController *builderdrafts.BuilderDraftController) {
	router.With(middlewares.Authentication).Get("/", builderDraftController.GetDraft)
	router.With(middlewares.Authentication).Put("/", builderDraftController.ReplaceDraft)
	router.With(middlewares.Authentication).Post("/questions", builderDraftController.AppendQuestions)
	router.With(middlewares.Authentication).Delete("/", builderDraftController.ClearDraft)
}
