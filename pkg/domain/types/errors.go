package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// ErrInvalidContent is returned when fetched file content is not valid UTF-8 text.
	ErrInvalidContent = goerr.New("invalid file content")
)
