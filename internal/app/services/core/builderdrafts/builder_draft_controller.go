package builderdrafts

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
	"vitalia-service/internal/pkg/constvars"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/exceptions"
	"vitalia-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type BuilderDraftController struct {
	Log                 *zap.Logger
	BuilderDraftUsecase BuilderDraftUsecase
}

func NewBuilderDraftController(logger *zap.Logger, builderDraftUsecase BuilderDraftUsecase) *BuilderDraftController {
	return &BuilderDraftController{
		Log:                 logger,
		BuilderDraftUsecase: builderDraftUsecase,
	}
}

func (ctrl *BuilderDraftController) GetDraft(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := utils.PractitionerIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	draft, err := ctrl.BuilderDraftUsecase.GetDraft(ctx, practitionerID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BuilderDraftGetSuccess, draft)
}

func (ctrl *BuilderDraftController) ReplaceDraft(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := utils.PractitionerIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.ReplaceBuilderDraft)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	draft, err := ctrl.BuilderDraftUsecase.ReplaceDraft(ctx, practitionerID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BuilderDraftSavedSuccess, draft)
}

func (ctrl *BuilderDraftController) AppendQuestions(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := utils.PractitionerIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.AppendBuilderQuestions)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	draft, err := ctrl.BuilderDraftUsecase.AppendQuestions(ctx, practitionerID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BuilderDraftAppendedSuccess, draft)
}

func (ctrl *BuilderDraftController) ClearDraft(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := utils.PractitionerIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = ctrl.BuilderDraftUsecase.ClearDraft(ctx, practitionerID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BuilderDraftClearedSuccess, nil)
}
