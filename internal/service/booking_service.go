package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"atrika/internal/domain"
	"atrika/internal/events"
	"atrika/internal/flights"
	"atrika/internal/metrics"
	"atrika/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	SortNewest = "newest"
	SortPrice  = "price"
	SortDate   = "date"

	StatusAll = "all"
)

type BookingService struct {
	store    domain.SessionStore
	seats    domain.SeatAssigner
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
	now      func() time.Time
	newID    func() string
}

func NewBookingService(store domain.SessionStore, seats domain.SeatAssigner, eventBus domain.EventPublisher, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		store:    store,
		seats:    seats,
		eventBus: eventBus,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Book confirms offer for class and stores the booking. The stored price is
// flights.PriceForClass, the same figure the results list shows. Seat and
// gate are drawn once here and kept on the record.
func (s *BookingService) Book(ctx context.Context, offer models.Offer, class models.FareClass, passengers int) (*models.Booking, error) {
	if offer.ID == "" || offer.BasePrice <= 0 {
		return nil, ErrInvalidOffer
	}
	if class == "" {
		class = models.ClassEconomy
	}
	if passengers < 1 {
		passengers = 1
	}

	booking := models.Booking{
		Offer:       offer,
		ID:          s.newID(),
		Price:       flights.PriceForClass(offer.BasePrice, class),
		Class:       class,
		Passengers:  passengers,
		BookingDate: s.now().UTC(),
		Status:      models.StatusUpcoming,
		SeatNumber:  s.seats.Seat(),
		Gate:        s.seats.Gate(),
	}

	s.store.AppendBooking(ctx, booking)
	metrics.IncBooking(string(class))

	s.logger.Info().
		Str("booking_id", booking.ID).
		Str("flight_number", booking.FlightNumber).
		Str("class", string(class)).
		Int("price", booking.Price).
		Msg("booking created")

	s.publishEvent(events.EventBookingCreated, booking)
	return &booking, nil
}

// Cancel moves an upcoming booking to Cancelled. Cancelling twice is a no-op.
func (s *BookingService) Cancel(ctx context.Context, id string) error {
	booking, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	switch booking.Status {
	case models.StatusCancelled:
		return nil
	case models.StatusUpcoming:
	default:
		return ErrBookingNotCancellable
	}

	if !s.store.UpdateBookingStatus(ctx, id, models.StatusCancelled) {
		return ErrBookingNotFound
	}
	booking.Status = models.StatusCancelled
	metrics.IncCancellation()

	s.logger.Info().Str("booking_id", id).Msg("booking cancelled")
	s.publishEvent(events.EventBookingCancelled, *booking)
	return nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return s.find(ctx, id)
}

// List filters by status and orders the result. Unknown sort keys fall back
// to newest first.
func (s *BookingService) List(ctx context.Context, filter models.BookingFilter) []models.Booking {
	all := s.store.Bookings(ctx)

	out := make([]models.Booking, 0, len(all))
	for _, b := range all {
		if filter.Status == "" || filter.Status == StatusAll || b.Status == filter.Status {
			out = append(out, b)
		}
	}

	switch filter.SortBy {
	case SortPrice:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortDate:
		sort.SliceStable(out, func(i, j int) bool {
			return day(out[i].BookingDate).After(day(out[j].BookingDate))
		})
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].BookingDate.After(out[j].BookingDate) })
	}
	return out
}

func (s *BookingService) find(ctx context.Context, id string) (*models.Booking, error) {
	for _, b := range s.store.Bookings(ctx) {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (s *BookingService) publishEvent(eventType string, booking models.Booking) {
	if s.eventBus == nil {
		return
	}

	payload := events.BookingEventPayload{
		BookingID:    booking.ID,
		FlightNumber: booking.FlightNumber,
		Airline:      booking.Airline,
		From:         booking.From,
		To:           booking.To,
		Class:        string(booking.Class),
		Passengers:   booking.Passengers,
		Price:        booking.Price,
		Status:       booking.Status,
	}

	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Str("booking_id", booking.ID).Msg("publish event error")
	}
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsNotFound reports whether err means the booking does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrBookingNotFound)
}
