package domain

import (
	"context"

	"atrika/internal/models"
)

// KVStore is the durable map behind the session store. Get returns
// nil, nil for a missing key.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

type SessionStore interface {
	Get(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, value any)
	AppendBooking(ctx context.Context, booking models.Booking)
	AppendSearchHistory(ctx context.Context, entry models.SearchHistoryEntry)
	UpdateBookingStatus(ctx context.Context, id, status string) bool
	ClearSession(ctx context.Context)
	User(ctx context.Context) (*models.UserData, bool)
	Profile(ctx context.Context) (*models.UserProfile, bool)
	SearchHistory(ctx context.Context) []models.SearchHistoryEntry
	Bookings(ctx context.Context) []models.Booking
}

type OfferGenerator interface {
	Generate(q *models.SearchQuery) []models.Offer
}

// SeatAssigner hands out display-only seat and gate labels.
type SeatAssigner interface {
	Seat() string
	Gate() string
}

type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

type SearchService interface {
	Search(ctx context.Context, q *models.SearchQuery) ([]models.PricedOffer, error)
	History(ctx context.Context) []models.SearchHistoryEntry
	Suggest(prefix string) []models.Destination
}

type BookingService interface {
	Book(ctx context.Context, offer models.Offer, class models.FareClass, passengers int) (*models.Booking, error)
	Cancel(ctx context.Context, id string) error
	List(ctx context.Context, filter models.BookingFilter) []models.Booking
}

type AccountService interface {
	Login(ctx context.Context, email string, remember bool) (*models.UserData, error)
	Guest(ctx context.Context) *models.UserData
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) (*models.UserData, error)
	Profile(ctx context.Context) (*models.Dashboard, error)
	SaveProfile(ctx context.Context, d models.Dashboard) (*models.Dashboard, error)
}

type DealService interface {
	Deals(budget int) []models.Deal
	Countdowns() []models.DealCountdown
	CurrentBanner() models.Banner
}
