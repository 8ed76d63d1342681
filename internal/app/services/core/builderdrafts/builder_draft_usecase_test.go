package builderdrafts

import (
	"context"
	"testing"
	"time"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

// fakeRedisRepository stores marshaled values in a map, mirroring how the
// real repository serializes on Set and returns raw strings on Get.
type fakeRedisRepository struct {
	values map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: make(map[string]string)}
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

func (r *fakeRedisRepository) TrySetNX(_ context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	if _, exists := r.values[key]; exists {
		return false, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	r.values[key] = string(raw)
	return true, nil
}

func (r *fakeRedisRepository) IncrementWithTTL(_ context.Context, _ string, _ time.Duration) (int, error) {
	return 1, nil
}

func bankQuestion(text string) models.Question {
	return models.Question{
		ID:           "bank-entry",
		QuestionType: models.QuestionTypeText,
		QuestionText: text,
	}
}

func TestGetDraft_Empty(t *testing.T) {
	usecase := NewBuilderDraftUsecase(newFakeRedisRepository())

	draft, err := usecase.GetDraft(context.Background(), "practitioner-1")

	assert.NoError(t, err)
	assert.False(t, draft.IsInitialized)
	assert.NotNil(t, draft.Questions)
	assert.Empty(t, draft.Questions)
}

func TestReplaceDraft(t *testing.T) {
	redisRepository := newFakeRedisRepository()
	usecase := NewBuilderDraftUsecase(redisRepository)

	replaced, err := usecase.ReplaceDraft(context.Background(), "practitioner-1", &requests.ReplaceBuilderDraft{
		Questions: []models.Question{
			{ID: "q-1", QuestionType: models.QuestionTypeText, QuestionText: "First", Order: 0},
		},
		Questionnaire: models.DraftQuestionnaire{Title: "Intake"},
	})

	assert.NoError(t, err)
	assert.True(t, replaced.IsInitialized)

	loaded, err := usecase.GetDraft(context.Background(), "practitioner-1")
	assert.NoError(t, err)
	assert.True(t, loaded.IsInitialized)
	assert.Equal(t, "Intake", loaded.Questionnaire.Title)
	if assert.Len(t, loaded.Questions, 1) {
		assert.Equal(t, "First", loaded.Questions[0].QuestionText)
	}
}

func TestReplaceDraft_LastWriteWins(t *testing.T) {
	usecase := NewBuilderDraftUsecase(newFakeRedisRepository())

	_, err := usecase.ReplaceDraft(context.Background(), "practitioner-1", &requests.ReplaceBuilderDraft{
		Questionnaire: models.DraftQuestionnaire{Title: "First title"},
	})
	assert.NoError(t, err)

	_, err = usecase.ReplaceDraft(context.Background(), "practitioner-1", &requests.ReplaceBuilderDraft{
		Questionnaire: models.DraftQuestionnaire{Title: "Second title"},
	})
	assert.NoError(t, err)

	loaded, err := usecase.GetDraft(context.Background(), "practitioner-1")
	assert.NoError(t, err)
	assert.Equal(t, "Second title", loaded.Questionnaire.Title)
	assert.Empty(t, loaded.Questions)
}

func TestAppendQuestions(t *testing.T) {
	t.Run("requires at least one question", func(t *testing.T) {
		usecase := NewBuilderDraftUsecase(newFakeRedisRepository())

		_, err := usecase.AppendQuestions(context.Background(), "practitioner-1", &requests.AppendBuilderQuestions{})

		customError, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customError.StatusCode)
	})

	t.Run("mints fresh ids and sequential orders", func(t *testing.T) {
		usecase := NewBuilderDraftUsecase(newFakeRedisRepository())

		first, err := usecase.AppendQuestions(context.Background(), "practitioner-1", &requests.AppendBuilderQuestions{
			Questions: []models.Question{bankQuestion("A"), bankQuestion("B")},
		})
		assert.NoError(t, err)
		assert.True(t, first.IsInitialized)
		if assert.Len(t, first.Questions, 2) {
			assert.NotEqual(t, "bank-entry", first.Questions[0].ID)
			assert.NotEqual(t, first.Questions[0].ID, first.Questions[1].ID)
			assert.Equal(t, 0, first.Questions[0].Order)
			assert.Equal(t, 1, first.Questions[1].Order)
		}

		second, err := usecase.AppendQuestions(context.Background(), "practitioner-1", &requests.AppendBuilderQuestions{
			Questions: []models.Question{bankQuestion("A"), bankQuestion("C")},
		})
		assert.NoError(t, err)
		if assert.Len(t, second.Questions, 4) {
			assert.Equal(t, 2, second.Questions[2].Order)
			assert.Equal(t, 3, second.Questions[3].Order)

			seen := make(map[string]bool)
			for _, question := range second.Questions {
				assert.False(t, seen[question.ID], "appended questions must not share ids")
				seen[question.ID] = true
			}
		}
	})

	t.Run("orders continue after a replaced draft", func(t *testing.T) {
		usecase := NewBuilderDraftUsecase(newFakeRedisRepository())

		_, err := usecase.ReplaceDraft(context.Background(), "practitioner-1", &requests.ReplaceBuilderDraft{
			Questions: []models.Question{
				{ID: "q-1", QuestionType: models.QuestionTypeText, QuestionText: "Existing", Order: 4},
			},
		})
		assert.NoError(t, err)

		appended, err := usecase.AppendQuestions(context.Background(), "practitioner-1", &requests.AppendBuilderQuestions{
			Questions: []models.Question{bankQuestion("New")},
		})
		assert.NoError(t, err)
		if assert.Len(t, appended.Questions, 2) {
			assert.Equal(t, 5, appended.Questions[1].Order)
		}
	})
}

func TestClearDraft(t *testing.T) {
	usecase := NewBuilderDraftUsecase(newFakeRedisRepository())

	_, err := usecase.ReplaceDraft(context.Background(), "practitioner-1", &requests.ReplaceBuilderDraft{
		Questionnaire: models.DraftQuestionnaire{Title: "Doomed"},
	})
	assert.NoError(t, err)

	assert.NoError(t, usecase.ClearDraft(context.Background(), "practitioner-1"))

	loaded, err := usecase.GetDraft(context.Background(), "practitioner-1")
	assert.NoError(t, err)
	assert.False(t, loaded.IsInitialized)
	assert.Empty(t, loaded.Questions)
}

func TestDrafts_ScopedPerPractitioner(t *testing.T) {
	usecase := NewBuilderDraftUsecase(newFakeRedisRepository())

	_, err := usecase.ReplaceDraft(context.Background(), "practitioner-1", &requests.ReplaceBuilderDraft{
		Questionnaire: models.DraftQuestionnaire{Title: "Mine"},
	})
	assert.NoError(t, err)

	other, err := usecase.GetDraft(context.Background(), "practitioner-2")
	assert.NoError(t, err)
	assert.False(t, other.IsInitialized)
	assert.Empty(t, other.Questions)
}
