package models

// Session is the payload stored in Redis under the session id carried by the
// JWT. Issuance happens outside this service.
type Session struct {
	SessionID      string `json:"session_id"`
	PractitionerID string `json:"practitioner_id"`
	Email          string `json:"email,omitempty"`
}
