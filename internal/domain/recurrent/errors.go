package recurrent

import "errors"

var (
	ErrPatternNotFound = errors.New("recurrent pattern not found")
)
