package db

import "errors"

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrDataCorrupted  = errors.New("data is corrupted")
)
