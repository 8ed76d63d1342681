package models

type Patient struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	PractitionerID string `json:"practitioner_id" bson:"practitionerId"`
	FullName       string `json:"full_name" bson:"fullName"`
	Email          string `json:"email,omitempty" bson:"email,omitempty"`
	Phone          string `json:"phone,omitempty" bson:"phone,omitempty"`
	BirthDate      string `json:"birth_date,omitempty" bson:"birthDate,omitempty"`
	Gender         string `json:"gender,omitempty" bson:"gender,omitempty"`
	Notes          string `json:"notes,omitempty" bson:"notes,omitempty"`
	TimeModel      `bson:",inline"`
}
