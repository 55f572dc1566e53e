package status

import "errors"

// Column-related validation errors
var (
	ErrEmptyTitle     = errors.New("column title cannot be empty")
	ErrTitleTooLong   = errors.New("column title cannot exceed 100 characters")
	ErrInvalidBoardID = errors.New("invalid board ID")
	ErrInvalidID      = errors.New("invalid column ID")
	ErrNegativeWIP    = errors.New("WIP limit must be positive")
)
