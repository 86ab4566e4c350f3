package person

import "errors"

// Person domain errors
var (
	ErrPersonNotFound  = errors.New("person not found")
	ErrTrigrammeExists = errors.New("trigramme already registered")
	ErrInvalidCapacity = errors.New("capacity must be between 0 and 1")
)
