package middlewares

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"
	"vitalia-service/internal/pkg/constvars"
	"vitalia-service/internal/pkg/exceptions"
	"vitalia-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// PublicThrottle is a fixed-window per-IP limit on the unauthenticated
// public-link endpoints, counted in Redis so every instance shares the
// window. Counting failures fail open; throttling is not worth an outage.
func (m *Middlewares) PublicThrottle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := clientAddress(r)
		window := time.Now().Unix() / 60
		throttleKey := fmt.Sprintf(constvars.RedisKeyPublicThrottleFormat, clientIP, window)

		count, err := m.RedisRepository.IncrementWithTTL(r.Context(), throttleKey, time.Minute)
		if err != nil {
			m.Log.Warn("public throttle counter unavailable", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		if count > m.InternalConfig.App.PublicThrottleMaxPerMinute {
			secondsLeft := 60 - time.Now().Unix()%60
			w.Header().Set(constvars.HeaderRetryAfter, strconv.FormatInt(secondsLeft, 10))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
