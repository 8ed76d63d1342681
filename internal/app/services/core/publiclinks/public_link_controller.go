package publiclinks

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

type PublicLinkController struct {
	Log               *zap.Logger
	PublicLinkUsecase PublicLinkUsecase
}

func NewPublicLinkController(logger *zap.Logger, publicLinkUsecase PublicLinkUsecase) *PublicLinkController {
	return &PublicLinkController{
		Log:               logger,
		PublicLinkUsecase: publicLinkUsecase,
	}
}

func (ctrl *PublicLinkController) CreatePublicLink(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := utils.PractitionerIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreatePublicLink)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PublicLinkUsecase.CreatePublicLink(ctx, practitionerID, questionnaireID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PublicLinkCreatedSuccess, response)
}

func (ctrl *PublicLinkController) ResolvePublicLink(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, constvars.URLParamToken)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PublicLinkUsecase.ResolvePublicLink(ctx, token)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PublicLinkResolvedSuccess, response)
}

func (ctrl *PublicLinkController) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitResponse)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	token := chi.URLParam(r, constvars.URLParamToken)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PublicLinkUsecase.SubmitResponse(ctx, token, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseSubmittedSuccess, response)
}
