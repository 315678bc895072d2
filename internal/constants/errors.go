package constants

import "errors"

// Configuration errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
	ErrInvalidTransport    = errors.New("invalid transport, expected std or resty")
	ErrInvalidHTTPTimeout  = errors.New("invalid http_timeout, must not be negative")
)

// Session errors.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptyToken      = errors.New("token must not be empty")
)
