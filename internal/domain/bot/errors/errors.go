// Package errors contains domain-specific errors for the bot domain
package errors

import (
	"errors"

	pkgerrors "github.com/yourusername/audio-drop-bot/pkg/errors"
)

// Category identifies a classified extraction failure
type Category string

// Extraction failure categories
const (
	CategoryPrivate        Category = "private"
	CategoryAgeRestricted  Category = "age_restricted"
	CategoryUnavailable    Category = "unavailable"
	CategoryCopyright      Category = "copyright"
	CategorySignInRequired Category = "sign_in_required"
	CategoryUnknown        Category = "unknown"
)

// ExtractionError is a tool failure mapped to a user-meaningful
// category. Its message is shown to the requester verbatim.
type ExtractionError struct {
	Category Category
	Message  string
}

func (e *ExtractionError) Error() string {
	return e.Message
}

// NewExtractionError creates a classified extraction error
func NewExtractionError(category Category, message string) *ExtractionError {
	return &ExtractionError{Category: category, Message: message}
}

// AsExtractionError unwraps err into an ExtractionError if it is one
func AsExtractionError(err error) (*ExtractionError, bool) {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}

// Domain errors for bot operations
var (
	ErrNotSupportedLink = pkgerrors.NewValidationError("not a supported video link")
	ErrVideoUnavailable = pkgerrors.NewUnavailableError("video is unavailable")
	ErrDurationExceeded = pkgerrors.NewPolicyError("video exceeds the maximum supported duration")
	ErrMetadataParse    = pkgerrors.NewInternalError("failed to parse video metadata")
	ErrSpawnFailed      = pkgerrors.NewInternalError("failed to execute extraction tool")
)
