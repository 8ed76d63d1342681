package models

type Document struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	PractitionerID string `json:"practitioner_id" bson:"practitionerId"`
	PatientID      string `json:"patient_id" bson:"patientId"`
	FileName       string `json:"file_name" bson:"fileName"`
	ObjectKey      string `json:"object_key" bson:"objectKey"`
	ContentType    string `json:"content_type" bson:"contentType"`
	SizeBytes      int64  `json:"size_bytes" bson:"sizeBytes"`
	TimeModel      `bson:",inline"`
}
