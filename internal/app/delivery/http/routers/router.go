package routers

import (
	"fmt"
	"time"
	"vitalia-service/internal/app/config"
	"vitalia-service/internal/app/delivery/http/middlewares"
	"vitalia-service/internal/app/services/core/builderdrafts"
	"vitalia-service/internal/app/services/core/documents"
	"vitalia-service/internal/app/services/core/patients"
	"vitalia-service/internal/app/services/core/publiclinks"
	"vitalia-service/internal/app/services/core/questionbank"
	"vitalia-service/internal/app/services/core/questionnaireresponses"
	"vitalia-service/internal/app/services/core/questionnaires"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	questionnaireController *questionnaires.QuestionnaireController,
	questionBankController *questionbank.QuestionBankController,
	publicLinkController *publiclinks.PublicLinkController,
	responseController *questionnaireresponses.ResponseController,
	builderDraftController *builderdrafts.BuilderDraftController,
	documentController *documents.DocumentController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestBodyLimit)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/public-link", func(r chi.Router) {
			attachPublicLinkRoutes(r, middlewares, publicLinkController)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, patientController, documentController)
		})

		r.Route("/questionnaires", func(r chi.Router) {
			attachQuestionnaireRoutes(r, middlewares, questionnaireController, publicLinkController, responseController)
		})

		r.Route("/responses", func(r chi.Router) {
			attachResponseRoutes(r, middlewares, responseController)
		})

		r.Route("/question-bank", func(r chi.Router) {
			attachQuestionBankRoutes(r, middlewares, questionBankController)
		})

		r.Route("/documents", func(r chi.Router) {
			attachDocumentRoutes(r, middlewares, documentController)
		})

		r.Route("/builder-draft", func(r chi.Router) {
			attachBuilderDraftRoutes(r, middlewares, builderDraftController)
		})
	})
}
