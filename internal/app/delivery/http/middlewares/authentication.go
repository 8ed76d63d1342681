package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/constvars"
	"vitalia-service/internal/pkg/exceptions"
	"vitalia-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// Authentication validates the bearer token, loads the backing session from
// Redis and puts the practitioner id on the request context. Routes behind it
// can assume utils.PractitionerIDFromContext succeeds.
func (m *Middlewares) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		sessionKey := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
		sessionData, err := m.RedisRepository.Get(r.Context(), sessionKey)
		if err != nil || sessionData == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(err))
			return
		}

		session := new(models.Session)
		if err := json.Unmarshal([]byte(sessionData), session); err != nil || session.PractitionerID == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		ctx = context.WithValue(ctx, constvars.CONTEXT_PRACTITIONER_ID_KEY, session.PractitionerID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
