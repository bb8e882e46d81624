package services

// ErrorKind tags which input precondition a distance call violated.
type ErrorKind int

const (
	// ShapeError: an argument is not a two-element sequence.
	ShapeError ErrorKind = iota + 1
	// TypeError: a latitude or longitude is not a real number.
	TypeError
)

const (
	invalidShapeMessage  = "Input must be two arrays, each containing exactly two numbers (latitude and longitude)."
	invalidNumberMessage = "Both latitude and longitude must be valid numbers."
)

var (
	// ErrInvalidShape is returned when an argument is not a [lat, lon] pair.
	ErrInvalidShape error = &ValidationError{Kind: ShapeError}
	// ErrInvalidNumber is returned when a latitude or longitude is not a finite number.
	ErrInvalidNumber error = &ValidationError{Kind: TypeError}
)

// ValidationError is returned when distance inputs fail validation.
// The message text is part of the contract; callers may match on it.
type ValidationError struct {
	Kind ErrorKind
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ShapeError:
		return invalidShapeMessage
	case TypeError:
		return invalidNumberMessage
	}
	return "invalid distance input"
}

// Is reports whether target is a ValidationError of the same kind.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}
