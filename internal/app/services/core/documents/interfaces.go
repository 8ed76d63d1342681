package documents

import (
	"context"
	"io"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/dto/responses"
)

type DocumentRepository interface {
	CreateDocument(ctx context.Context, document *models.Document) (string, error)
	FindByID(ctx context.Context, practitionerID, documentID string) (*models.Document, error)
	FindAllByPatient(ctx context.Context, practitionerID, patientID string, pagination *requests.Pagination) ([]models.Document, int, error)
	DeleteDocument(ctx context.Context, practitionerID, documentID string) error
}

type DocumentUsecase interface {
	UploadDocument(ctx context.Context, practitionerID, patientID, fileName, contentType string, sizeBytes int64, reader io.Reader) (*responses.UploadedDocument, error)
	FindDocuments(ctx context.Context, practitionerID, patientID string, pagination *requests.Pagination) ([]models.Document, *responses.Pagination, error)
	DocumentDownloadURL(ctx context.Context, practitionerID, documentID string) (*responses.DocumentDownload, error)
	DeleteDocumentByID(ctx context.Context, practitionerID, documentID string) error
}
