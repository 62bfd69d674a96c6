package http

import "errors"

var (
	ErrMissingStatus = errors.New("response status code is not set")
	ErrUnknownStatus = errors.New("response status code has no reason phrase")
)
