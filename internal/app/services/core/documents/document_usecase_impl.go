package documents

import (
	"context"
	"io"
	"strings"
	"time"
	"vitalia-service/internal/app/config"
	"vitalia-service/internal/app/contracts"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/app/services/core/patients"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/dto/responses"
	"vitalia-service/internal/pkg/exceptions"
	"vitalia-service/internal/pkg/utils"
)

var allowedDocumentMIMETypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"text/plain":      true,
}

type documentUsecase struct {
	DocumentRepository DocumentRepository
	PatientRepository  patients.PatientRepository
	Storage            contracts.Storage
	InternalConfig     *config.InternalConfig
}

func NewDocumentUsecase(
	documentRepository DocumentRepository,
	patientRepository patients.PatientRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
) DocumentUsecase {
	return &documentUsecase{
		DocumentRepository: documentRepository,
		PatientRepository:  patientRepository,
		Storage:            storage,
		InternalConfig:     internalConfig,
	}
}

func (uc *documentUsecase) UploadDocument(ctx context.Context, practitionerID, patientID, fileName, contentType string, sizeBytes int64, reader io.Reader) (*responses.UploadedDocument, error) {
	maxSizeBytes := uc.InternalConfig.App.DocumentUploadMaxSizeInMB << 20
	if sizeBytes > maxSizeBytes {
		return nil, exceptions.ErrFileTooLarge(nil, uc.InternalConfig.App.DocumentUploadMaxSizeInMB)
	}
	normalizedType := strings.TrimSpace(strings.ToLower(contentType))
	if !allowedDocumentMIMETypes[normalizedType] {
		return nil, exceptions.ErrFileTypeNotAllowed(nil, contentType)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, practitionerID, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.Deleted() {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	objectKey := utils.GenerateObjectKey(practitionerID, patientID, fileName)
	if err := uc.Storage.UploadObject(ctx, objectKey, normalizedType, reader, sizeBytes); err != nil {
		return nil, err
	}

	document := &models.Document{
		PractitionerID: practitionerID,
		PatientID:      patientID,
		FileName:       fileName,
		ObjectKey:      objectKey,
		ContentType:    normalizedType,
		SizeBytes:      sizeBytes,
	}
	document.InitTimestamps()

	documentID, err := uc.DocumentRepository.CreateDocument(ctx, document)
	if err != nil {
		// The object is already stored; drop it so no orphan remains.
		_ = uc.Storage.RemoveObject(ctx, objectKey)
		return nil, err
	}

	return &responses.UploadedDocument{
		ID:          documentID,
		FileName:    fileName,
		ContentType: normalizedType,
		SizeBytes:   sizeBytes,
	}, nil
}

func (uc *documentUsecase) FindDocuments(ctx context.Context, practitionerID, patientID string, pagination *requests.Pagination) ([]models.Document, *responses.Pagination, error) {
	documents, total, err := uc.DocumentRepository.FindAllByPatient(ctx, practitionerID, patientID, pagination)
	if err != nil {
		return nil, nil, err
	}
	if documents == nil {
		documents = []models.Document{}
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, "/patients/"+patientID+"/documents")
	return documents, paginationResponse, nil
}

func (uc *documentUsecase) DocumentDownloadURL(ctx context.Context, practitionerID, documentID string) (*responses.DocumentDownload, error) {
	document, err := uc.DocumentRepository.FindByID(ctx, practitionerID, documentID)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, exceptions.ErrDocumentNotFound(nil)
	}

	expiry := time.Duration(uc.InternalConfig.App.DocumentDownloadURLExpMinutes) * time.Minute
	url, err := uc.Storage.PresignedDownloadURL(ctx, document.ObjectKey, document.FileName, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.DocumentDownload{
		URL:       url,
		ExpiresAt: time.Now().Add(expiry),
	}, nil
}

func (uc *documentUsecase) DeleteDocumentByID(ctx context.Context, practitionerID, documentID string) error {
	document, err := uc.DocumentRepository.FindByID(ctx, practitionerID, documentID)
	if err != nil {
		return err
	}
	if document == nil {
		return exceptions.ErrDocumentNotFound(nil)
	}

	if err := uc.Storage.RemoveObject(ctx, document.ObjectKey); err != nil {
		return err
	}
	return uc.DocumentRepository.DeleteDocument(ctx, practitionerID, documentID)
}
