package scene

import "errors"

// Domain errors for scene construction.
var (
	// ErrInvalidParams indicates a generator or animator parameter outside its valid range.
	ErrInvalidParams = errors.New("scene: invalid parameters")

	// ErrUnknownFont indicates a caption font name with no registered face.
	ErrUnknownFont = errors.New("scene: unknown font")

	// ErrUnknownPreset indicates a preset name with no registered configuration.
	ErrUnknownPreset = errors.New("scene: unknown preset")
)

// ParamError wraps ErrInvalidParams with the offending field.
type ParamError struct {
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	return "scene: invalid " + e.Field + ": " + e.Reason
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParams
}
