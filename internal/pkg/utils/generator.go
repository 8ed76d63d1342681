package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

// GeneratePublicLinkToken mints an opaque, unguessable, URL-safe token.
func GeneratePublicLinkToken(byteLength int) (string, error) {
	tokenBytes := make([]byte, byteLength)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(tokenBytes), nil
}

func GenerateObjectKey(practitionerID, patientID, fileName string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s/%s/%s_%s", practitionerID, patientID, timestamp, fileName)
}
