package types

import (
	"crypto/rand"
	"encoding/hex"
	"net/url"

	"github.com/google/uuid"
)

// IsValidURL reports whether s is an absolute http or https URL with a host.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsHTTPSURL reports whether s is an absolute https URL with a host.
func IsHTTPSURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme == "https" && u.Host != ""
}

// GenerateUUID returns a random UUID string.
func GenerateUUID() string {
	return uuid.NewString()
}

// GenerateSecureToken returns a hex-encoded random token of n bytes.
func GenerateSecureToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
