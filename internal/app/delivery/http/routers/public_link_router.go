package routers

import (
	"vitalia-service/internal/app/delivery/http/middlewares"
	"vitalia-service/internal/app/services/core/publiclinks"

	"github.com/go-chi/chi/v5"
)

// The token-scoped endpoints are unauthenticated; the token itself is the
// credential. They carry the shared throttle instead.
func attachPublicLinkRoutes(router chi.Router, middlewares *middlewares.Middlewares, publicLinkController *publiclinks.PublicLinkController) {
	router.With(middlewares.PublicThrottle).Get("/{token}", publicLinkController.ResolvePublicLink)
	router.With(middlewares.PublicThrottle).Post("/{token}/submit", publicLinkController.SubmitResponse)
}
