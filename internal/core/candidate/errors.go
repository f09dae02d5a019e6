package candidate

import "errors"

var (
	ErrInvalidID         = errors.New("candidate: invalid id")
	ErrInvalidFullName   = errors.New("candidate: invalid full name")
	ErrInvalidEmail      = errors.New("candidate: invalid email")
	ErrInvalidStatus     = errors.New("candidate: invalid status")
	ErrInvalidActor      = errors.New("candidate: actor is required")
	ErrInvalidPageSize   = errors.New("candidate: invalid page size")
	ErrInvalidPageToken  = errors.New("candidate: invalid page token")
	ErrCandidateNotFound = errors.New("candidate: not found")
)
