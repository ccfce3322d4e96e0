package ai

import "fmt"

// InputError is a problem with what the client sent. It maps to a 4xx response.
type InputError struct {
	Message string
	Err     error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *InputError) Unwrap() error { return e.Err }

// NewInputError builds an InputError with a fixed message.
func NewInputError(msg string) error {
	return &InputError{Message: msg}
}

// GenerationError wraps a failure of the generation call. It maps to a 5xx response.
type GenerationError struct {
	Model string
	Err   error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }
