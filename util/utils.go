package util

import (
	"strings"

	"github.com/google/uuid"
)

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

// StringPtr returns nil for blank strings so optional columns stay NULL.
func StringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
