package patients

import (
	"context"
	"vitalia-service/internal/app/models"
	"vitalia-service/internal/pkg/dto/requests"
	"vitalia-service/internal/pkg/dto/responses"
	"vitalia-service/internal/pkg/exceptions"
	"vitalia-service/internal/pkg/utils"
)

type patientUsecase struct {
	PatientRepository PatientRepository
}

func NewPatientUsecase(patientRepository PatientRepository) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, practitionerID string, request *requests.CreatePatient) (*models.Patient, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient := &models.Patient{
		PractitionerID: practitionerID,
		FullName:       request.FullName,
		Email:          request.Email,
		Phone:          request.Phone,
		BirthDate:      request.BirthDate,
		Gender:         request.Gender,
		Notes:          request.Notes,
	}
	patient.InitTimestamps()

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID

	return patient, nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, practitionerID, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, practitionerID, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient, nil
}

func (uc *patientUsecase) FindPatients(ctx context.Context, practitionerID string, request *requests.ListPatients) ([]models.Patient, *responses.Pagination, error) {
	patients, total, err := uc.PatientRepository.FindAll(ctx, practitionerID, request)
	if err != nil {
		return nil, nil, err
	}
	if patients == nil {
		patients = []models.Patient{}
	}

	pagination := utils.BuildPaginationResponse(total, request.Pagination.Page, request.Pagination.PageSize, "/patients")
	return patients, pagination, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, practitionerID, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, practitionerID, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	patient.FullName = request.FullName
	patient.Email = request.Email
	patient.Phone = request.Phone
	patient.BirthDate = request.BirthDate
	patient.Gender = request.Gender
	patient.Notes = request.Notes

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (uc *patientUsecase) DeletePatientByID(ctx context.Context, practitionerID, patientID string) error {
	patient, err := uc.PatientRepository.FindByID(ctx, practitionerID, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotFound(nil)
	}
	return uc.PatientRepository.SoftDeletePatient(ctx, practitionerID, patientID)
}

func (uc *patientUsecase) RestorePatientByID(ctx context.Context, practitionerID, patientID string) error {
	patient, err := uc.PatientRepository.FindByID(ctx, practitionerID, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotFound(nil)
	}
	return uc.PatientRepository.RestorePatient(ctx, practitionerID, patientID)
}
