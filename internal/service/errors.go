package service

import "errors"

var (
	ErrInvalidSearch         = errors.New("origin, destination and departure date are required")
	ErrInvalidOffer          = errors.New("offer is missing an id or a price")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrBookingNotCancellable = errors.New("only upcoming bookings can be cancelled")
	ErrNotLoggedIn           = errors.New("not logged in")
	ErrInvalidEmail          = errors.New("a valid email is required")
)
