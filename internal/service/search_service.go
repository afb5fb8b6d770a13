package service

import (
	"context"
	"time"

	"atrika/internal/domain"
	"atrika/internal/events"
	"atrika/internal/flights"
	"atrika/internal/metrics"
	"atrika/internal/models"

	"github.com/rs/zerolog"
)

type SearchService struct {
	store     domain.SessionStore
	generator domain.OfferGenerator
	eventBus  domain.EventPublisher
	logger    *zerolog.Logger
	now       func() time.Time
}

func NewSearchService(store domain.SessionStore, generator domain.OfferGenerator, eventBus domain.EventPublisher, logger *zerolog.Logger) *SearchService {
	return &SearchService{
		store:     store,
		generator: generator,
		eventBus:  eventBus,
		logger:    logger,
		now:       time.Now,
	}
}

// Search records q in the history and returns offers priced for q.Class.
// An incomplete query is rejected before anything is generated or stored.
func (s *SearchService) Search(ctx context.Context, q *models.SearchQuery) ([]models.PricedOffer, error) {
	if !q.Valid() {
		return nil, ErrInvalidSearch
	}

	normalized := *q
	if normalized.Class == "" {
		normalized.Class = models.ClassEconomy
	}
	if normalized.Passengers < 1 {
		normalized.Passengers = 1
	}
	if normalized.TripType == "" {
		normalized.TripType = models.TripRoundTrip
	}

	s.store.AppendSearchHistory(ctx, models.SearchHistoryEntry{
		From:       normalized.From,
		To:         normalized.To,
		Date:       normalized.DepartDate,
		Class:      normalized.Class,
		Passengers: normalized.Passengers,
		Timestamp:  s.now().UTC(),
	})

	offers := flights.Price(s.generator.Generate(&normalized), normalized.Class)
	metrics.IncSearch(string(normalized.Class))

	s.logger.Debug().
		Str("from", normalized.From).
		Str("to", normalized.To).
		Str("class", string(normalized.Class)).
		Int("offers", len(offers)).
		Msg("search performed")

	if s.eventBus != nil {
		payload := events.SearchEventPayload{
			From:   normalized.From,
			To:     normalized.To,
			Date:   normalized.DepartDate,
			Class:  string(normalized.Class),
			Offers: len(offers),
		}
		if err := s.eventBus.PublishJSON(events.EventSearchPerformed, payload); err != nil {
			s.logger.Error().Err(err).Str("event_type", events.EventSearchPerformed).Msg("publish event error")
		}
	}

	return offers, nil
}

func (s *SearchService) History(ctx context.Context) []models.SearchHistoryEntry {
	return s.store.SearchHistory(ctx)
}

func (s *SearchService) Suggest(query string) []models.Destination {
	return flights.Suggest(query)
}
