package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Custom error types for the adopciones backend

// ErrAvisoNotFound is returned when an aviso id doesn't exist in the database
var ErrAvisoNotFound = errors.New("aviso not found")

// ErrComunaNotFound is returned when neither the comuna id nor the comuna name resolves
var ErrComunaNotFound = errors.New("comuna not found")

// ErrRegionNotFound is returned when a region id doesn't exist in the database
var ErrRegionNotFound = errors.New("region not found")

// ValidationError carries the full list of human-readable field errors
// produced in one validation pass. It is reported to the client as-is
// and never triggers a retry.
type ValidationError struct {
	Errores []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errores, "; "))
}

// ErrFotoStorage is returned when writing an uploaded photo to the file
// store fails (disk full, permissions). The in-flight submission aborts.
type ErrFotoStorage struct {
	Nombre string
	Reason string
}

func (e ErrFotoStorage) Error() string {
	return fmt.Sprintf("failed to store photo %s: %s", e.Nombre, e.Reason)
}
