package service

import "errors"

// Service errors, mapped to HTTP statuses by the handlers
var (
	ErrAirportNotFound    = errors.New("airport not found")
	ErrSameAirport        = errors.New("origin and destination must differ")
	ErrNoRoute            = errors.New("no route found")
	ErrInvalidArrivalTime = errors.New("arrival time must be HH:MM")
)
