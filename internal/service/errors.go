package service

import "errors"

var (
	ErrCityNotFound      = errors.New("city not found")
	ErrCityAlreadyExists = errors.New("city already exists")
	ErrInvalidWindow     = errors.New("invalid pagination window")
)
