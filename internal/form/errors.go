package form

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrRequiredFields = errors.New("required fields missing")
	ErrInvalidIndex   = errors.New("index out of range")
	ErrNotOpen        = errors.New("editor is not open")
	ErrUnknownField   = errors.New("unknown field")
	ErrNoGallery      = errors.New("record type does not take images")

	ErrUpload   = errors.New("failed to upload images, please retry")
	ErrSubmit   = errors.New("failed to submit profile")
	ErrInFlight = errors.New("submission already in progress")
)

// MissingFieldsError lists the required draft fields that were blank on
// confirm.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRequiredFields, strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Unwrap() error { return ErrRequiredFields }

// ValidationError carries field-level messages for scalar input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}

	return "invalid input: " + strings.Join(parts, "; ")
}
