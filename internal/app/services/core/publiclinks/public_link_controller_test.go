package publiclinks

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func submitRouter(fixture *usecaseFixture) *chi.Mux {
	controller := NewPublicLinkController(zap.NewNop(), fixture.usecase)
	router := chi.NewRouter()
	router.Post("/public-link/{token}/submit", controller.SubmitResponse)
	return router
}

func TestSubmitResponseController_HandlesBodies(t *testing.T) {
	t.Run("null body gets field errors, not a dropped connection", func(t *testing.T) {
		fixture := newUsecaseFixture()
		token := fixture.createLink(t)
		router := submitRouter(fixture)

		request := httptest.NewRequest(http.MethodPost, "/public-link/"+token+"/submit", strings.NewReader("null"))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var body struct {
			Errors []struct {
				Field string `json:"field"`
			} `json:"errors"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		if assert.Len(t, body.Errors, 1) {
			assert.Equal(t, "q-text", body.Errors[0].Field)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		fixture := newUsecaseFixture()
		token := fixture.createLink(t)
		router := submitRouter(fixture)

		request := httptest.NewRequest(http.MethodPost, "/public-link/"+token+"/submit", strings.NewReader("{answers"))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("valid body submits", func(t *testing.T) {
		fixture := newUsecaseFixture()
		token := fixture.createLink(t)
		router := submitRouter(fixture)

		payload := `{"answers":[{"question_id":"q-text","question_type":"text","text":"fine"}]}`
		request := httptest.NewRequest(http.MethodPost, "/public-link/"+token+"/submit", strings.NewReader(payload))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Len(t, fixture.queue.published, 1)
	})
}
