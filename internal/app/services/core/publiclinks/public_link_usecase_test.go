package publiclinks

import (
	"context"
	"fmt"
	"testing"
	"time"
	"vitalia-service/internal/app/config"
	"vitalia-service/internal/app/contracts"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePublicLinkRepository struct {
	links  map[string]*models.PublicLink // keyed by id
	nextID int
}

func newFakePublicLinkRepository() *fakePublicLinkRepository {
	return &fakePublicLinkRepository{links: make(map[string]*models.PublicLink)}
}

func (r *fakePublicLinkRepository) CreatePublicLink(_ context.Context, link *models.PublicLink) (string, error) {
	r.nextID++
	link.ID = fmt.Sprintf("link-%d", r.nextID)
	stored := *link
	r.links[link.ID] = &stored
	return link.ID, nil
}

func (r *fakePublicLinkRepository) FindByToken(_ context.Context, token string) (*models.PublicLink, error) {
	for _, link := range r.links {
		if link.Token == token {
			found := *link
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakePublicLinkRepository) FindLive(_ context.Context, questionnaireID, patientID string, now time.Time) (*models.PublicLink, error) {
	var newest *models.PublicLink
	for _, link := range r.links {
		if link.QuestionnaireID != questionnaireID || link.PatientID != patientID || link.Expired(now) {
			continue
		}
		if newest == nil || link.CreatedAt.After(newest.CreatedAt) {
			newest = link
		}
	}
	if newest == nil {
		return nil, nil
	}
	found := *newest
	return &found, nil
}

type fakeResponseRepository struct {
	responses map[string]*models.QuestionnaireResponse // keyed by public link id
	// raceWinner, when set, makes the next insert behave as if a concurrent
	// writer got there first: the insert reports duplicate and the winner
	// becomes visible to subsequent reads.
	raceWinner *models.QuestionnaireResponse
	nextID     int
}

func newFakeResponseRepository() *fakeResponseRepository {
	return &fakeResponseRepository{responses: make(map[string]*models.QuestionnaireResponse)}
}

func (r *fakeResponseRepository) CreateResponse(_ context.Context, response *models.QuestionnaireResponse) (string, bool, error) {
	if r.raceWinner != nil {
		r.responses[r.raceWinner.PublicLinkID] = r.raceWinner
		r.raceWinner = nil
		return "", true, nil
	}
	if r.responses[response.PublicLinkID] != nil {
		return "", true, nil
	}
	r.nextID++
	response.ID = fmt.Sprintf("response-%d", r.nextID)
	stored := *response
	r.responses[response.PublicLinkID] = &stored
	return response.ID, false, nil
}

func (r *fakeResponseRepository) FindByPublicLinkID(_ context.Context, publicLinkID string) (*models.QuestionnaireResponse, error) {
	response, exists := r.responses[publicLinkID]
	if !exists {
		return nil, nil
	}
	found := *response
	return &found, nil
}

func (r *fakeResponseRepository) FindByID(_ context.Context, responseID string) (*models.QuestionnaireResponse, error) {
	for _, response := range r.responses {
		if response.ID == responseID {
			found := *response
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeResponseRepository) FindAllByQuestionnaireID(_ context.Context, _ string, _ *requests.Pagination) ([]models.QuestionnaireResponse, int, error) {
	return nil, 0, nil
}

func (r *fakeResponseRepository) FindAllForSummary(_ context.Context, _ string) ([]models.QuestionnaireResponse, error) {
	return nil, nil
}

type fakeQuestionnaireRepository struct {
	questionnaires map[string]*models.Questionnaire
}

func (r *fakeQuestionnaireRepository) CreateQuestionnaire(_ context.Context, _ *models.Questionnaire) (string, error) {
	return "", nil
}

func (r *fakeQuestionnaireRepository) FindByID(_ context.Context, practitionerID, questionnaireID string) (*models.Questionnaire, error) {
	questionnaire, exists := r.questionnaires[questionnaireID]
	if !exists || questionnaire.PractitionerID != practitionerID {
		return nil, nil
	}
	return questionnaire, nil
}

func (r *fakeQuestionnaireRepository) FindAll(_ context.Context, _ string, _ *requests.ListQuestionnaires) ([]models.Questionnaire, int, error) {
	return nil, 0, nil
}

func (r *fakeQuestionnaireRepository) UpdateQuestionnaire(_ context.Context, _ *models.Questionnaire) error {
	return nil
}

func (r *fakeQuestionnaireRepository) SoftDeleteQuestionnaire(_ context.Context, _, _ string) error {
	return nil
}

type fakePatientRepository struct {
	patients map[string]*models.Patient
}

func (r *fakePatientRepository) CreatePatient(_ context.Context, _ *models.Patient) (string, error) {
	return "", nil
}

func (r *fakePatientRepository) FindByID(_ context.Context, practitionerID, patientID string) (*models.Patient, error) {
	patient, exists := r.patients[patientID]
	if !exists || patient.PractitionerID != practitionerID {
		return nil, nil
	}
	return patient, nil
}

func (r *fakePatientRepository) FindAll(_ context.Context, _ string, _ *requests.ListPatients) ([]models.Patient, int, error) {
	return nil, 0, nil
}

func (r *fakePatientRepository) UpdatePatient(_ context.Context, _ *models.Patient) error { return nil }

func (r *fakePatientRepository) SoftDeletePatient(_ context.Context, _, _ string) error { return nil }

func (r *fakePatientRepository) RestorePatient(_ context.Context, _, _ string) error { return nil }

type fakeLockerService struct {
	held map[string]bool
}

func (l *fakeLockerService) TryLock(_ context.Context, key string, _ time.Duration) (bool, string, error) {
	if l.held == nil {
		l.held = make(map[string]bool)
	}
	if l.held[key] {
		return false, "", nil
	}
	l.held[key] = true
	return true, "lock-value", nil
}

func (l *fakeLockerService) Unlock(_ context.Context, key, _ string) error {
	delete(l.held, key)
	return nil
}

type fakeNotificationQueue struct {
	published []*contracts.ResponseReceivedEvent
}

func (q *fakeNotificationQueue) PublishResponseReceived(_ context.Context, event *contracts.ResponseReceivedEvent) error {
	q.published = append(q.published, event)
	return nil
}

type usecaseFixture struct {
	usecase       PublicLinkUsecase
	links         *fakePublicLinkRepository
	responses     *fakeResponseRepository
	locker        *fakeLockerService
	queue         *fakeNotificationQueue
	questionnaire *models.Questionnaire
	patient       *models.Patient
}

func newUsecaseFixture() *usecaseFixture {
	questionnaire := &models.Questionnaire{
		ID:             "questionnaire-1",
		PractitionerID: "practitioner-1",
		Title:          "Intake",
		Questions: []models.Question{
			{
				ID:           "q-text",
				QuestionType: models.QuestionTypeText,
				QuestionText: "How are you feeling?",
				Required:     true,
				Order:        0,
			},
		},
	}
	patient := &models.Patient{
		ID:             "patient-1",
		PractitionerID: "practitioner-1",
		FullName:       "Ada Example",
	}

	links := newFakePublicLinkRepository()
	responses := newFakeResponseRepository()
	locker := &fakeLockerService{}
	queue := &fakeNotificationQueue{}

	internalConfig := &config.InternalConfig{}
	internalConfig.App.PublicLinkDefaultExpiryInDays = 30

	usecase := NewPublicLinkUsecase(
		zap.NewNop(),
		links,
		responses,
		&fakeQuestionnaireRepository{questionnaires: map[string]*models.Questionnaire{questionnaire.ID: questionnaire}},
		&fakePatientRepository{patients: map[string]*models.Patient{patient.ID: patient}},
		locker,
		queue,
		internalConfig,
	)

	return &usecaseFixture{
		usecase:       usecase,
		links:         links,
		responses:     responses,
		locker:        locker,
		queue:         queue,
		questionnaire: questionnaire,
		patient:       patient,
	}
}

func (f *usecaseFixture) createLink(t *testing.T) string {
	t.Helper()
	created, err := f.usecase.CreatePublicLink(context.Background(), "practitioner-1", "questionnaire-1", &requests.CreatePublicLink{PatientID: "patient-1"})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.Token)
	return created.Token
}

func answerText(value string) []models.Answer {
	return []models.Answer{
		{QuestionID: "q-text", QuestionType: models.QuestionTypeText, Text: &value},
	}
}

func TestCreatePublicLink(t *testing.T) {
	t.Run("applies default expiry when none requested", func(t *testing.T) {
		fixture := newUsecaseFixture()

		created, err := fixture.usecase.CreatePublicLink(context.Background(), "practitioner-1", "questionnaire-1", &requests.CreatePublicLink{PatientID: "patient-1"})

		assert.NoError(t, err)
		assert.False(t, created.Reused)
		if assert.NotNil(t, created.ExpiresAt) {
			expected := time.Now().AddDate(0, 0, 30)
			assert.WithinDuration(t, expected, *created.ExpiresAt, time.Minute)
		}
	})

	t.Run("reuses the live unanswered link", func(t *testing.T) {
		fixture := newUsecaseFixture()

		first, err := fixture.usecase.CreatePublicLink(context.Background(), "practitioner-1", "questionnaire-1", &requests.CreatePublicLink{PatientID: "patient-1"})
		assert.NoError(t, err)

		second, err := fixture.usecase.CreatePublicLink(context.Background(), "practitioner-1", "questionnaire-1", &requests.CreatePublicLink{PatientID: "patient-1"})
		assert.NoError(t, err)

		assert.True(t, second.Reused)
		assert.Equal(t, first.Token, second.Token)
	})

	t.Run("mints a new link once the existing one is answered", func(t *testing.T) {
		fixture := newUsecaseFixture()
		token := fixture.createLink(t)

		_, err := fixture.usecase.SubmitResponse(context.Background(), token, &requests.SubmitResponse{Answers: answerText("fine")})
		assert.NoError(t, err)

		created, err := fixture.usecase.CreatePublicLink(context.Background(), "practitioner-1", "questionnaire-1", &requests.CreatePublicLink{PatientID: "patient-1"})
		assert.NoError(t, err)
		assert.False(t, created.Reused)
		assert.NotEqual(t, token, created.Token)
	})

	t.Run("unknown questionnaire", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.CreatePublicLink(context.Background(), "practitioner-1", "questionnaire-missing", &requests.CreatePublicLink{PatientID: "patient-1"})

		customError, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customError.StatusCode)
	})

	t.Run("missing patient id fails input validation", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.CreatePublicLink(context.Background(), "practitioner-1", "questionnaire-1", &requests.CreatePublicLink{})

		customError, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customError.StatusCode)
	})
}

func TestResolvePublicLink(t *testing.T) {
	t.Run("unknown token", func(t *testing.T) {
		fixture := newUsecaseFixture()

		_, err := fixture.usecase.ResolvePublicLink(context.Background(), "no-such-token")

		customError, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customError.StatusCode)
	})

	t.Run("expired link", func(t *testing.T) {
		fixture := newUsecaseFixture()
		token := fixture.createLink(t)
		for _, link := range fixture.links.links {
			past := time.Now().Add(-time.Hour)
			link.ExpiresAt = &past
		}

		_, err := fixture.usecase.ResolvePublicLink(context.Background(), token)

		customError, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 410, customError.StatusCode)
	})

	t.Run("returns questionnaire and patient", func(t *testing.T) {
		fixture := newUsecaseFixture()
		token := fixture.createLink(t)

		resolved, err := fixture.usecase.ResolvePublicLink(context.Background(), token)

		assert.NoError(t, err)
		assert.Equal(t, "questionnaire-1", resolved.Questionnaire.ID)
		if assert.NotNil(t, resolved.Patient) {
			assert.Equal(t, "Ada Example", resolved.Patient.FullName)
		}
		assert.Nil(t, resolved.Response)
	})

	t.Run("surfaces the prior response after submission", func(t *testing.T) {
		fixture := newUsecaseFixture()
		token := fixture.createLink(t)

		submitted, err := fixture.usecase.SubmitResponse(context.Background(), token, &requests.SubmitResponse{Answers: answerText("fine")})
		assert.NoError(t, err)

		resolved, err := fixture.usecase.ResolvePublicLink(context.Background(), token)
		assert.NoError(t, err)
		if assert.NotNil(t, resolved.Response) {
			assert.Equal(t, submitted.ID, resolved.Response.ID)
		}
	})
}

func TestSubmitResponse(t *testing.T) {
	t.Run("persists and publishes the received event", func(t *testing.T) {
		fixture := newUsecaseFixture()
		token := fixture.createLink(t)

		submitted, err := fixture.usecase.SubmitResponse(context.Background(), token, &requests.SubmitResponse{Answers: answerText("fine")})

		assert.NoError(t, err)
		assert.NotEmpty(t, submitted.ID)
		if assert.Len(t, fixture.queue.published, 1) {
			event := fixture.queue.published[0]
			assert.Equal(t, submitted.ID, event.ResponseID)
			assert.Equal(t, "questionnaire-1", event.QuestionnaireID)
			assert.Equal(t, "patient-1", event.PatientID)
			assert.Equal(t, "practitioner-1", event.PractitionerID)
		}
	})

	t.Run("invalid answers are rejected with field errors", func(t *testing.T) {
		fixture := newUsecaseFixture()
		token := fixture.createLink(t)

		_, err := fixture.usecase.SubmitResponse(context.Background(), token, &requests.SubmitResponse{})

		customError, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customError.StatusCode)
		if assert.Len(t, customError.Fields, 1) {
			assert.Equal(t, "q-text", customError.Fields[0].Field)
		}
		assert.Empty(t, fixture.queue.published, "nothing is published for a rejected submission")
	})

	t.Run("second submission reports the first response", func(t *testing.T) {
		fixture := newUsecaseFixture()
		token := fixture.createLink(t)

		first, err := fixture.usecase.SubmitResponse(context.Background(), token, &requests.SubmitResponse{Answers: answerText("fine")})
		assert.NoError(t, err)

		_, err = fixture.usecase.SubmitResponse(context.Background(), token, &requests.SubmitResponse{Answers: answerText("again")})

		customError, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 409, customError.StatusCode)
		data, ok := customError.Data.(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, first.ID, data["id"])
		assert.Len(t, fixture.queue.published, 1, "only the winning submission publishes")
	})

	t.Run("losing the insert race reports the winner", func(t *testing.T) {
		fixture := newUsecaseFixture()
		token := fixture.createLink(t)

		winner := &models.QuestionnaireResponse{
			ID:          "response-winner",
			CompletedAt: time.Now().Add(-time.Second),
		}
		for _, link := range fixture.links.links {
			winner.PublicLinkID = link.ID
		}
		fixture.responses.raceWinner = winner

		_, err := fixture.usecase.SubmitResponse(context.Background(), token, &requests.SubmitResponse{Answers: answerText("fine")})

		customError, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 409, customError.StatusCode)
		data, ok := customError.Data.(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "response-winner", data["id"])
		assert.Equal(t, winner.CompletedAt, data["completed_at"])
	})

	t.Run("lock contention", func(t *testing.T) {
		fixture := newUsecaseFixture()
		token := fixture.createLink(t)

		var linkID string
		for _, link := range fixture.links.links {
			linkID = link.ID
		}
		fixture.locker.held = map[string]bool{fmt.Sprintf("public_link_submit_lock:%s", linkID): true}

		_, err := fixture.usecase.SubmitResponse(context.Background(), token, &requests.SubmitResponse{Answers: answerText("fine")})

		customError, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 409, customError.StatusCode)
		assert.Empty(t, fixture.responses.responses, "nothing is written while another submission holds the lock")
	})

	t.Run("expired link", func(t *testing.T) {
		fixture := newUsecaseFixture()
		token := fixture.createLink(t)
		for _, link := range fixture.links.links {
			past := time.Now().Add(-time.Hour)
			link.ExpiresAt = &past
		}

		_, err := fixture.usecase.SubmitResponse(context.Background(), token, &requests.SubmitResponse{Answers: answerText("fine")})

		customError, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 410, customError.StatusCode)
	})
}
