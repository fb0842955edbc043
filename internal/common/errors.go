// Package common defines shared constants and sentinel errors used across
// the docshare client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Upload coordinator errors.
	ErrUploadInFlight = errors.New("upload already in flight")
	ErrEmptyFile      = errors.New("empty file")

	// Validation errors.
	ErrorIncorrectMetadata = errors.New("incorrect metadata")

	// Clipboard errors.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)
