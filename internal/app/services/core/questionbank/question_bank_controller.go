package questionbank

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
	"vitalia-service/internal/pkg/constvars"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/exceptions"
	"vitalia-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type QuestionBankController struct {
	Log                 *zap.Logger
	QuestionBankUsecase QuestionBankUsecase
}

func NewQuestionBankController(logger *zap.Logger, questionBankUsecase QuestionBankUsecase) *QuestionBankController {
	return &QuestionBankController{
		Log:                 logger,
		QuestionBankUsecase: questionBankUsecase,
	}
}

func (ctrl *QuestionBankController) CreateEntry(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := utils.PractitionerIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateQuestionBankEntry)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QuestionBankUsecase.CreateEntry(ctx, practitionerID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.QuestionBankCreatedSuccess, response)
}

func (ctrl *QuestionBankController) FindEntries(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := utils.PractitionerIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.ListQuestionBank{
		Category:   r.URL.Query().Get(constvars.URLQueryParamCategory),
		Pagination: utils.BuildPaginationRequest(r),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entries, pagination, err := ctrl.QuestionBankUsecase.FindEntries(ctx, practitionerID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.QuestionBankFetchSuccess, pagination, entries)
}

func (ctrl *QuestionBankController) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := utils.PractitionerIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateQuestionBankEntry)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	entryID := chi.URLParam(r, constvars.URLParamQuestionBankID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QuestionBankUsecase.UpdateEntry(ctx, practitionerID, entryID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.QuestionBankUpdatedSuccess, response)
}

func (ctrl *QuestionBankController) DeleteEntryByID(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := utils.PractitionerIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	entryID := chi.URLParam(r, constvars.URLParamQuestionBankID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = ctrl.QuestionBankUsecase.DeleteEntryByID(ctx, practitionerID, entryID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.QuestionBankDeletedSuccess, nil)
}
