package field

import "errors"

// Domain errors for field construction.
var (
	// ErrInvalidVariant indicates a variant whose tuning cannot drive a field.
	ErrInvalidVariant = errors.New("field: invalid variant")

	// ErrUnknownBoundary indicates an unrecognised boundary policy name.
	ErrUnknownBoundary = errors.New("field: unknown boundary policy")

	// ErrUnknownColoring indicates an unrecognised colour policy name.
	ErrUnknownColoring = errors.New("field: unknown colour policy")
)
