package routers

import (
	"vitalia-service/internal/app/delivery/http/middlewares"
	"vitalia-service/internal/app/services/core/documents"

	"github.com/go-chi/chi/v5"
)

func attachDocumentRoutes(router chi.Router, middlewares *middlewares.Middlewares, documentController *documents.DocumentController) {
	router.With(middlewares.Authentication).Get("/{document_id}/download-url", documentController.DocumentDownloadURL)
	router.With(middlewares.Authentication).Delete("/{document_id}", documentController.DeleteDocumentByID)
}
