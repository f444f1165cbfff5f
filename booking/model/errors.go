package model

import "errors"

// ErrNotEnoughRooms is returned by daos when a guarded write would push the
// aggregate room count over MaxRoomsAvailable.
var ErrNotEnoughRooms = errors.New("not enough rooms available")

// RequestError is a failure the caller can act on: a validation problem (400)
// or a missing record (404). Anything else surfaced by the services is a
// collaborator failure and is reported as a generic 500 by the handlers.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

func NewValidationError(message string) *RequestError {
	return &RequestError{StatusCode: 400, Message: message}
}

func NewNotFoundError(message string) *RequestError {
	return &RequestError{StatusCode: 404, Message: message}
}

func AsRequestError(err error) *RequestError {
	if err == nil {
		return nil
	}

	var requestError *RequestError
	if errors.As(err, &requestError) {
		return requestError
	}

	return nil
}
