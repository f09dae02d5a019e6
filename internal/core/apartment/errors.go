package apartment

import "errors"

var (
	ErrInvalidID              = errors.New("apartment: invalid id")
	ErrInvalidName            = errors.New("apartment: invalid name")
	ErrInvalidCapacity        = errors.New("apartment: invalid capacity")
	ErrInvalidRent            = errors.New("apartment: invalid monthly rent")
	ErrInvalidPageSize        = errors.New("apartment: invalid page size")
	ErrInvalidPageToken       = errors.New("apartment: invalid page token")
	ErrApartmentNotFound      = errors.New("apartment: not found")
	ErrNoVacancy              = errors.New("apartment: no vacancy")
	ErrApartmentOccupied      = errors.New("apartment: still occupied")
	ErrCapacityBelowOccupancy = errors.New("apartment: capacity below current occupants")
)
