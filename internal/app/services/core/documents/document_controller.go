package documents

import (
	"context"
	"net/http"
	"time"
	"vitalia-service/internal/app/config"
	"vitalia-service/internal/pkg/constvars"
	"vitalia-service/internal/pkg/exceptions"
	"vitalia-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DocumentController struct {
	Log             *zap.Logger
	DocumentUsecase DocumentUsecase
	InternalConfig  *config.InternalConfig
}

func NewDocumentController(logger *zap.Logger, documentUsecase DocumentUsecase, internalConfig *config.InternalConfig) *DocumentController {
	return &DocumentController{
		Log:             logger,
		DocumentUsecase: documentUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *DocumentController) UploadDocument(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := utils.PractitionerIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	maxMemory := ctrl.InternalConfig.App.DocumentUploadMaxSizeInMB << 20
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	contentType := fileHeader.Header.Get(constvars.HeaderContentType)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	response, err := ctrl.DocumentUsecase.UploadDocument(ctx, practitionerID, patientID, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DocumentUploadedSuccess, response)
}

func (ctrl *DocumentController) FindDocuments(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := utils.PractitionerIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	documents, paginationResponse, err := ctrl.DocumentUsecase.FindDocuments(ctx, practitionerID, patientID, pagination)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.DocumentFetchSuccess, paginationResponse, documents)
}

func (ctrl *DocumentController) DocumentDownloadURL(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := utils.PractitionerIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	documentID := chi.URLParam(r, constvars.URLParamDocumentID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DocumentUsecase.DocumentDownloadURL(ctx, practitionerID, documentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DocumentURLSuccess, response)
}

func (ctrl *DocumentController) DeleteDocumentByID(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := utils.PractitionerIDFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	documentID := chi.URLParam(r, constvars.URLParamDocumentID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = ctrl.DocumentUsecase.DeleteDocumentByID(ctx, practitionerID, documentID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DocumentDeletedSuccess, nil)
}
