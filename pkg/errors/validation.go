package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds location names read from world files.
const maxNameLength = 256

// ValidateLocationName checks a location name taken from external input.
//
// The map accepts any string, but a name that is empty, overly long or
// contains control characters (a newline above all) would break the
// line-oriented diagram formats, so loaders reject them up front.
func ValidateLocationName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidName, "location name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "location name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "location name %q contains control characters", name)
		}
	}

	return nil
}

// ValidateMinutes checks a path weight taken from external input.
func ValidateMinutes(minutes int) error {
	if minutes < 0 {
		return New(ErrCodeInvalidInput, "path minutes cannot be negative (got %d)", minutes)
	}
	return nil
}
