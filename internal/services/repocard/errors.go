package repocard

import "errors"

// Card-related validation errors
var (
	ErrEmptyTitle       = errors.New("card title cannot be empty")
	ErrTitleTooLong     = errors.New("card title cannot exceed 255 characters")
	ErrInvalidCardID    = errors.New("invalid card ID")
	ErrInvalidColumnID  = errors.New("invalid column ID")
	ErrInvalidRepoName  = errors.New("repository must be in owner/name form")
	ErrNoRepoReference  = errors.New("card has no repository reference")
	ErrInvalidPosition  = errors.New("invalid position: must be >= 0")
)
