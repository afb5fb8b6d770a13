package service

import (
	"encoding/json"
	"testing"
	"time"

	"atrika/internal/models"
	"atrika/internal/repository"
	"atrika/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishJSON(eventType string, payload interface{}) error {
	return m.Called(eventType, payload).Error(0)
}

type fixedSeats struct{}

func (fixedSeats) Seat() string { return "12C" }
func (fixedSeats) Gate() string { return "A7" }

type stubGenerator struct {
	offers []models.Offer
	calls  int
}

func (g *stubGenerator) Generate(q *models.SearchQuery) []models.Offer {
	g.calls++
	out := make([]models.Offer, len(g.offers))
	for i, o := range g.offers {
		o.From, o.To = q.From, q.To
		out[i] = o
	}
	return out
}

func newTestSession(t *testing.T) (*session.Store, *repository.MemoryStore) {
	t.Helper()
	kv := repository.NewMemoryStore()
	logger := zerolog.Nop()
	return session.NewStore(kv, &logger), kv
}

func testLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sampleOffer() models.Offer {
	return models.Offer{
		ID:           "flight-1",
		Airline:      "Vistara",
		FlightNumber: "VI512",
		From:         "Delhi (DEL)",
		To:           "Mumbai (BOM)",
		DepartTime:   models.Clock{Hour: 6, Minute: 30},
		ArriveTime:   models.Clock{Hour: 9, Minute: 0},
		Duration:     models.Duration{Hours: 2, Minutes: 30},
		BasePrice:    20000,
		Stops:        0,
		Aircraft:     "Boeing 737",
	}
}

func decodeRaw[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}
