package routers

import (
	"vitalia-service/internal/app/delivery/http/middlewares"
	"vitalia-service/internal/app/services/core/documents"
	"vitalia-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController, documentController *documents.DocumentController) {
	router.With(middlewares.Authentication).Post("/", patientController.CreatePatient)
	router.With(middlewares.Authentication).Get("/", patientController.FindPatients)
	router.With(middlewares.Authentication).Get("/{patient_id}", patientController.FindPatientByID)
	router.With(middlewares.Authentication).Put("/{patient_id}", patientController.UpdatePatient)
	router.With(middlewares.Authentication).Delete("/{patient_id}", patientController.DeletePatientByID)
	router.With(middlewares.Authentication).Post("/{patient_id}/restore", patientController.RestorePatientByID)

	router.With(middlewares.Authentication).Post("/{patient_id}/documents", documentController.UploadDocument)
	router.With(middlewares.Authentication).Get("/{patient_id}/documents", documentController.FindDocuments)
}
