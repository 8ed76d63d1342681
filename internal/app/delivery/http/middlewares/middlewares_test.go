package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"vitalia-service/internal/app/config"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/constvars"
	"vitalia-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	values    map[string]string
	counts    map[string]int
	countsErr error
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{
		values: make(map[string]string),
		counts: make(map[string]int),
	}
}

func (r *fakeRedisRepository) Delete(_ context.Context, key string) error {
	delete(r.values, key)
	return nil
}

func (r *fakeRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.values[key] = string(raw)
	return nil
}

func (r *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	return r.values[key], nil
}

func (r *fakeRedisRepository) TrySetNX(_ context.Context, key string, _ interface{}, _ time.Duration) (bool, error) {
	if _, exists := r.values[key]; exists {
		return false, nil
	}
	r.values[key] = "locked"
	return true, nil
}

func (r *fakeRedisRepository) IncrementWithTTL(_ context.Context, key string, _ time.Duration) (int, error) {
	if r.countsErr != nil {
		return 0, r.countsErr
	}
	r.counts[key]++
	return r.counts[key], nil
}

func newTestMiddlewares(redisRepository *fakeRedisRepository) *Middlewares {
	internalConfig := &config.InternalConfig{}
	internalConfig.App.PublicThrottleMaxPerMinute = 3
	internalConfig.JWT.Secret = "test-secret"
	return NewMiddlewares(zap.NewNop(), redisRepository, internalConfig)
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func signedToken(t *testing.T, secret, sessionID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestAuthentication(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		var called bool
		middlewares := newTestMiddlewares(newFakeRedisRepository())

		request := httptest.NewRequest(http.MethodGet, "/patients", nil)
		recorder := httptest.NewRecorder()
		middlewares.Authentication(okHandler(&called)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, called)
	})

	t.Run("malformed token", func(t *testing.T) {
		var called bool
		middlewares := newTestMiddlewares(newFakeRedisRepository())

		request := httptest.NewRequest(http.MethodGet, "/patients", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		recorder := httptest.NewRecorder()
		middlewares.Authentication(okHandler(&called)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, called)
	})

	t.Run("valid token without a backing session", func(t *testing.T) {
		var called bool
		middlewares := newTestMiddlewares(newFakeRedisRepository())

		request := httptest.NewRequest(http.MethodGet, "/patients", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+signedToken(t, "test-secret", "session-1"))
		recorder := httptest.NewRecorder()
		middlewares.Authentication(okHandler(&called)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, called)
	})

	t.Run("valid session reaches the handler with the practitioner id", func(t *testing.T) {
		redisRepository := newFakeRedisRepository()
		middlewares := newTestMiddlewares(redisRepository)

		session := &models.Session{SessionID: "session-1", PractitionerID: "practitioner-1"}
		err := redisRepository.Set(context.Background(), fmt.Sprintf(constvars.RedisKeySessionFormat, "session-1"), session, 0)
		assert.NoError(t, err)

		var practitionerID string
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			practitionerID, _ = utils.PractitionerIDFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		request := httptest.NewRequest(http.MethodGet, "/patients", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+signedToken(t, "test-secret", "session-1"))
		recorder := httptest.NewRecorder()
		middlewares.Authentication(handler).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "practitioner-1", practitionerID)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		var called bool
		middlewares := newTestMiddlewares(newFakeRedisRepository())

		request := httptest.NewRequest(http.MethodGet, "/patients", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+signedToken(t, "wrong-secret", "session-1"))
		recorder := httptest.NewRecorder()
		middlewares.Authentication(okHandler(&called)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, called)
	})
}

func TestPublicThrottle(t *testing.T) {
	t.Run("allows requests under the limit", func(t *testing.T) {
		middlewares := newTestMiddlewares(newFakeRedisRepository())

		for i := 0; i < 3; i++ {
			var called bool
			request := httptest.NewRequest(http.MethodGet, "/public-link/token", nil)
			recorder := httptest.NewRecorder()
			middlewares.PublicThrottle(okHandler(&called)).ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.True(t, called)
		}
	})

	t.Run("rejects once the window fills", func(t *testing.T) {
		middlewares := newTestMiddlewares(newFakeRedisRepository())

		var recorder *httptest.ResponseRecorder
		var called bool
		for i := 0; i < 4; i++ {
			called = false
			request := httptest.NewRequest(http.MethodGet, "/public-link/token", nil)
			recorder = httptest.NewRecorder()
			middlewares.PublicThrottle(okHandler(&called)).ServeHTTP(recorder, request)
		}

		assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
		assert.False(t, called)
		assert.NotEmpty(t, recorder.Header().Get(constvars.HeaderRetryAfter))
	})

	t.Run("separate clients get separate windows", func(t *testing.T) {
		middlewares := newTestMiddlewares(newFakeRedisRepository())

		for i := 0; i < 4; i++ {
			request := httptest.NewRequest(http.MethodGet, "/public-link/token", nil)
			request.RemoteAddr = "10.0.0.1:1234"
			middlewares.PublicThrottle(okHandler(new(bool))).ServeHTTP(httptest.NewRecorder(), request)
		}

		var called bool
		request := httptest.NewRequest(http.MethodGet, "/public-link/token", nil)
		request.RemoteAddr = "10.0.0.2:1234"
		recorder := httptest.NewRecorder()
		middlewares.PublicThrottle(okHandler(&called)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, called)
	})

	t.Run("fails open when the counter is unavailable", func(t *testing.T) {
		redisRepository := newFakeRedisRepository()
		redisRepository.countsErr = errors.New("connection refused")
		middlewares := newTestMiddlewares(redisRepository)

		var called bool
		request := httptest.NewRequest(http.MethodGet, "/public-link/token", nil)
		recorder := httptest.NewRecorder()
		middlewares.PublicThrottle(okHandler(&called)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, called)
	})
}
