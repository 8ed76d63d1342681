package routers

import (
	"vitalia-service/internal/app/delivery/http/middlewares"
	"vitalia-service/internal/app/services/core/questionnaireresponses"

	"github.com/go-chi/chi/v5"
)

func attachResponseRoutes(router chi.Router, middlewares *middlewares.Middlewares, responseController *questionnaireresponses.ResponseController) {
	router.With(middlewares.Authentication).Get("/{response_id}", responseController.FindResponseByID)
}
