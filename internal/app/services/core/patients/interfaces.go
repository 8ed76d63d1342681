package patients

import (
	"context"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/dto/responses"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindByID(ctx context.Context, practitionerID, patientID string) (*models.Patient, error)
	FindAll(ctx context.Context, practitionerID string, request *requests.ListPatients) ([]models.Patient, int, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	SoftDeletePatient(ctx context.Context, practitionerID, patientID string) error
	RestorePatient(ctx context.Context, practitionerID, patientID string) error
}

type PatientUsecase interface {
	CreatePatient(ctx context.Context, practitionerID string, request *requests.CreatePatient) (*models.Patient, error)
	FindPatientByID(ctx context.Context, practitionerID, patientID string) (*models.Patient, error)
	FindPatients(ctx context.Context, practitionerID string, request *requests.ListPatients) ([]models.Patient, *responses.Pagination, error)
	UpdatePatient(ctx context.Context, practitionerID, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
	DeletePatientByID(ctx context.Context, practitionerID, patientID string) error
	RestorePatientByID(ctx context.Context, practitionerID, patientID string) error
}
