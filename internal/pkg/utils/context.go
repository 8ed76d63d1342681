package utils

import (
	"context"
	"vitalia-service/internal/pkg/constvars"
	"vitalia-service/internal/pkg/exceptions"
)

func PractitionerIDFromContext(ctx context.Context) (string, error) {
	practitionerID, ok := ctx.Value(constvars.CONTEXT_PRACTITIONER_ID_KEY).(string)
	if !ok || practitionerID == "" {
		return "", exceptions.ErrSessionInvalid(nil)
	}
	return practitionerID, nil
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
