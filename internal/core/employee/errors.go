package employee

import "errors"

var (
	ErrInvalidID                = errors.New("employee: invalid id")
	ErrInvalidStatus            = errors.New("employee: invalid status")
	ErrInvalidEmploymentType    = errors.New("employee: invalid employment type")
	ErrInvalidPageSize          = errors.New("employee: invalid page size")
	ErrInvalidPageToken         = errors.New("employee: invalid page token")
	ErrInvalidDateRange         = errors.New("employee: invalid employment period")
	ErrInvalidFullName          = errors.New("employee: invalid full name")
	ErrAlreadyTerminated        = errors.New("employee: already terminated")
	ErrEmployeeNotFound         = errors.New("employee: not found")
	ErrAssignmentNotFound       = errors.New("employee: assignment not found")
	ErrEmployeeNumberExists     = errors.New("employee: employee number already exists")
	ErrCandidateAlreadyEmployed = errors.New("employee: candidate already has an employee record")
	ErrAssignmentAlreadyExists  = errors.New("employee: assignment already exists")
)
