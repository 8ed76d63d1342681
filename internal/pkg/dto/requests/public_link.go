package requests

import "vitalia-service/internal/app/models"

type CreatePublicLink struct {
	PatientID string `json:"patient_id" validate:"required"`
	// ExpiresInDays is optional; zero falls back to the configured default.
	ExpiresInDays int `json:"expires_in_days" validate:"omitempty,gte=0,lte=365"`
}

type SubmitResponse struct {
	Answers []models.Answer `json:"answers"`
}
