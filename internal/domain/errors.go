package domain

import "errors"

var (
	ErrCityNotFound     = errors.New("city not found")
	ErrMissingParameter = errors.New("missing parameter")
	ErrInvalidMode      = errors.New("invalid travel mode")
	ErrExternalService  = errors.New("external service failure")
)
