package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound       = errors.New("not found")
	ErrMissingAPIBase = errors.New("api base is required")
	ErrNothingToFetch = errors.New("no paths or regulation to get")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FetchError represents a non-200 response from the API. Title and Detail
// carry whatever could be scraped from an HTML error page; Status and
// StatusText are always set.
type FetchError struct {
	Path       string
	Status     int
	StatusText string
	Title      string
	Detail     string
}

func (e *FetchError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("error sending %d: %s, %s", e.Status, e.Title, e.Detail)
	}
	return fmt.Sprintf("error getting %s: %d %s", e.Path, e.Status, e.StatusText)
}
