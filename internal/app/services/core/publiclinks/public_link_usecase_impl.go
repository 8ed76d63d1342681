package publiclinks

import (
	"context"
	"fmt"
	"time"
	"vitalia-service/internal/app/config"
	"vitalia-service/internal/app/contracts"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/app/services/core/patients"
	"vitalia-service/internal/app/services/core/questionnaireresponses"
	"vitalia-service/internal/app/services/core/questionnaires"
	"vitalia-service/internal/pkg/constvars"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/dto/responses"
	"vitalia-service/internal/pkg/exceptions"
	"vitalia-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type publicLinkUsecase struct {
	Log                     *zap.Logger
	PublicLinkRepository    PublicLinkRepository
	ResponseRepository      questionnaireresponses.ResponseRepository
	QuestionnaireRepository questionnaires.QuestionnaireRepository
	PatientRepository       patients.PatientRepository
	LockerService           contracts.LockerService
	NotificationQueue       contracts.NotificationQueue
	InternalConfig          *config.InternalConfig
}

func NewPublicLinkUsecase(
	logger *zap.Logger,
	publicLinkRepository PublicLinkRepository,
	responseRepository questionnaireresponses.ResponseRepository,
	questionnaireRepository questionnaires.QuestionnaireRepository,
	patientRepository patients.PatientRepository,
	lockerService contracts.LockerService,
	notificationQueue contracts.NotificationQueue,
	internalConfig *config.InternalConfig,
) PublicLinkUsecase {
	return &publicLinkUsecase{
		Log:                     logger,
		PublicLinkRepository:    publicLinkRepository,
		ResponseRepository:      responseRepository,
		QuestionnaireRepository: questionnaireRepository,
		PatientRepository:       patientRepository,
		LockerService:           lockerService,
		NotificationQueue:       notificationQueue,
		InternalConfig:          internalConfig,
	}
}

func (uc *publicLinkUsecase) CreatePublicLink(ctx context.Context, practitionerID, questionnaireID string, request *requests.CreatePublicLink) (*responses.CreatedPublicLink, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, practitionerID, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, practitionerID, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.Deleted() {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	now := time.Now()

	// A live unanswered link for the same pair is handed back instead of
	// minting a second one.
	existing, err := uc.PublicLinkRepository.FindLive(ctx, questionnaireID, request.PatientID, now)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		response, err := uc.ResponseRepository.FindByPublicLinkID(ctx, existing.ID)
		if err != nil {
			return nil, err
		}
		if response == nil {
			return &responses.CreatedPublicLink{
				Token:     existing.Token,
				ExpiresAt: existing.ExpiresAt,
				Reused:    true,
			}, nil
		}
	}

	token, err := utils.GeneratePublicLinkToken(constvars.PublicLinkTokenByteLength)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	link := &models.PublicLink{
		Token:           token,
		QuestionnaireID: questionnaireID,
		PatientID:       request.PatientID,
		PractitionerID:  practitionerID,
	}
	expiresInDays := request.ExpiresInDays
	if expiresInDays == 0 {
		expiresInDays = uc.InternalConfig.App.PublicLinkDefaultExpiryInDays
	}
	if expiresInDays > 0 {
		expiresAt := now.AddDate(0, 0, expiresInDays)
		link.ExpiresAt = &expiresAt
	}
	link.InitTimestamps()

	if _, err := uc.PublicLinkRepository.CreatePublicLink(ctx, link); err != nil {
		return nil, err
	}

	return &responses.CreatedPublicLink{
		Token:     token,
		ExpiresAt: link.ExpiresAt,
	}, nil
}

func (uc *publicLinkUsecase) ResolvePublicLink(ctx context.Context, token string) (*responses.ResolvePublicLink, error) {
	link, err := uc.PublicLinkRepository.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, exceptions.ErrPublicLinkNotFound(nil)
	}
	if link.Expired(time.Now()) {
		return nil, exceptions.ErrPublicLinkExpired(nil)
	}

	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, link.PractitionerID, link.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrPublicLinkNotFound(nil)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, link.PractitionerID, link.PatientID)
	if err != nil {
		return nil, err
	}

	resolved := &responses.ResolvePublicLink{
		Questionnaire: questionnaire,
	}
	if patient != nil {
		resolved.Patient = &responses.PublicPatient{
			ID:       patient.ID,
			FullName: patient.FullName,
		}
	}

	// A prior response is surfaced so the caller renders the answered
	// state instead of the form.
	response, err := uc.ResponseRepository.FindByPublicLinkID(ctx, link.ID)
	if err != nil {
		return nil, err
	}
	resolved.Response = response

	return resolved, nil
}

func (uc *publicLinkUsecase) SubmitResponse(ctx context.Context, token string, request *requests.SubmitResponse) (*responses.SubmittedResponse, error) {
	link, err := uc.PublicLinkRepository.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, exceptions.ErrPublicLinkNotFound(nil)
	}
	if link.Expired(time.Now()) {
		return nil, exceptions.ErrPublicLinkExpired(nil)
	}

	existing, err := uc.ResponseRepository.FindByPublicLinkID(ctx, link.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrPublicLinkAlreadyAnswered(existing.ID, existing.CompletedAt)
	}

	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, link.PractitionerID, link.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrPublicLinkNotFound(nil)
	}

	if fieldErrors := models.ValidateAnswerSet(questionnaire, request.Answers); len(fieldErrors) > 0 {
		return nil, exceptions.ErrAnswerValidation(fieldErrors)
	}

	// The lock only narrows the race window; the unique index on
	// publicLinkId is what guarantees at-most-once.
	lockKey := fmt.Sprintf(constvars.RedisKeySubmitLockFormat, link.ID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, constvars.SubmitLockExpirationInSeconds*time.Second)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSubmissionInFlight(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.Background(), lockKey, lockValue); err != nil {
			uc.Log.Warn("failed to release submit lock", zap.String("lock_key", lockKey), zap.Error(err))
		}
	}()

	response := &models.QuestionnaireResponse{
		PublicLinkID:    link.ID,
		QuestionnaireID: link.QuestionnaireID,
		PatientID:       link.PatientID,
		Answers:         models.SortAnswersByQuestionOrder(questionnaire, request.Answers),
		CompletedAt:     time.Now(),
	}
	response.InitTimestamps()

	responseID, duplicate, err := uc.ResponseRepository.CreateResponse(ctx, response)
	if err != nil {
		return nil, err
	}
	if duplicate {
		// Another submission won the race; hand back its identity.
		winner, err := uc.ResponseRepository.FindByPublicLinkID(ctx, link.ID)
		if err != nil {
			return nil, err
		}
		if winner == nil {
			return nil, exceptions.ErrServerProcess(nil)
		}
		return nil, exceptions.ErrPublicLinkAlreadyAnswered(winner.ID, winner.CompletedAt)
	}

	event := &contracts.ResponseReceivedEvent{
		ResponseID:      responseID,
		PublicLinkID:    link.ID,
		QuestionnaireID: link.QuestionnaireID,
		PatientID:       link.PatientID,
		PractitionerID:  link.PractitionerID,
		CompletedAt:     response.CompletedAt,
	}
	if err := uc.NotificationQueue.PublishResponseReceived(ctx, event); err != nil {
		// The response is already durable; event delivery is best effort.
		uc.Log.Warn("failed to publish response received event",
			zap.String("response_id", responseID),
			zap.Error(err),
		)
	}

	return &responses.SubmittedResponse{
		ID:          responseID,
		CompletedAt: response.CompletedAt,
	}, nil
}
