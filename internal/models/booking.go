package models

import "time"

// Booking is a confirmed offer. The offer keeps its own id under "offer".
type Booking struct {
	Offer       `json:"offer"`
	ID          string    `json:"id"`
	Price       int       `json:"price"`
	Class       FareClass `json:"class"`
	Passengers  int       `json:"passengers"`
	BookingDate time.Time `json:"booking_date"`
	Status      string    `json:"status"` // Upcoming, Completed, Cancelled
	SeatNumber  string    `json:"seat_number"`
	Gate        string    `json:"gate"`
}

// BookingFilter selects and orders bookings for the bookings page.
type BookingFilter struct {
	Status string // "all" or one of the status constants
	SortBy string // newest, price, date
}
