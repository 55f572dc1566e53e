package models

import "errors"

// Domain-specific errors shared across services and the board engine
var (
	// ErrColumnNotFound indicates the referenced column does not exist
	ErrColumnNotFound = errors.New("column not found")

	// ErrCardNotFound indicates the referenced card does not exist
	ErrCardNotFound = errors.New("card not found")

	// ErrBoardNotFound indicates the referenced board does not exist
	ErrBoardNotFound = errors.New("board not found")
)
