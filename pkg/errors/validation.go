package errors

import (
	"unicode"
)

// maxNameLength bounds element names and view keys.
const maxNameLength = 256

// ValidateName validates an element name or view key.
//
// A name must be non-empty, at most 256 bytes long and free of control
// characters, which would break diagram labels.
//
// The what argument names the thing being validated in the message
// (e.g. "person name", "view key").
func ValidateName(what, name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "%s cannot be empty", what)
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "%s too long (max %d characters)", what, maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", what)
		}
	}

	return nil
}
