// Package session holds the per-session state every page reads and writes:
// identity, profile, search history and bookings.
//
// Values are JSON encoded. The store keeps an in-memory mirror of the raw
// values it has seen and writes through to the backend on every mutation.
// Backend and decode failures never reach the caller: they are logged,
// counted, and the affected key reads as absent.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sync"

	"atrika/internal/domain"
	"atrika/internal/metrics"
	"atrika/internal/models"

	"github.com/rs/zerolog"
)

// identityKeys are removed by ClearSession. Profile, bookings and search
// history outlive a logout and show up again on the next login.
var identityKeys = []string{
	models.KeyUserData,
	models.KeyRememberLogin,
}

var errNilTarget = errors.New("decode target must be a non-nil pointer")

type Store struct {
	kv     domain.KVStore
	logger *zerolog.Logger

	mu     sync.Mutex
	mirror map[string][]byte
}

func NewStore(kv domain.KVStore, logger *zerolog.Logger) *Store {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Store{
		kv:     kv,
		logger: logger,
		mirror: make(map[string][]byte),
	}
}

// Get decodes the value stored under key into dst. It reports false when
// the key is absent, the backend failed or the stored value does not decode.
func (s *Store) Get(ctx context.Context, key string, dst any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decodeLocked(ctx, key, dst)
}

// Set replaces the value under key.
func (s *Store) Set(ctx context.Context, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.encodeLocked(ctx, key, value)
}

func (s *Store) AppendBooking(ctx context.Context, booking models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []models.Booking
	s.decodeLocked(ctx, models.KeyBookings, &list)
	list = append(list, booking)
	s.encodeLocked(ctx, models.KeyBookings, list)
}

// AppendSearchHistory puts entry first and keeps the newest MaxSearchHistory.
func (s *Store) AppendSearchHistory(ctx context.Context, entry models.SearchHistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var history []models.SearchHistoryEntry
	s.decodeLocked(ctx, models.KeySearchHistory, &history)

	updated := make([]models.SearchHistoryEntry, 0, models.MaxSearchHistory)
	updated = append(updated, entry)
	for _, h := range history {
		if len(updated) == models.MaxSearchHistory {
			break
		}
		updated = append(updated, h)
	}
	s.encodeLocked(ctx, models.KeySearchHistory, updated)
}

// UpdateBookingStatus sets the status of the booking with the given id and
// reports whether such a booking exists. Nothing else on any record changes.
func (s *Store) UpdateBookingStatus(ctx context.Context, id, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []models.Booking
	if !s.decodeLocked(ctx, models.KeyBookings, &list) {
		return false
	}

	found := false
	for i := range list {
		if list[i].ID == id {
			list[i].Status = status
			found = true
		}
	}
	if !found {
		return false
	}
	s.encodeLocked(ctx, models.KeyBookings, list)
	return true
}

// ClearSession drops the logged-in identity.
func (s *Store) ClearSession(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range identityKeys {
		delete(s.mirror, key)
	}
	if err := s.kv.Delete(ctx, identityKeys...); err != nil {
		s.fail("delete", "", err)
	}
}

func (s *Store) User(ctx context.Context) (*models.UserData, bool) {
	var u models.UserData
	if !s.Get(ctx, models.KeyUserData, &u) {
		return nil, false
	}
	return &u, true
}

func (s *Store) Profile(ctx context.Context) (*models.UserProfile, bool) {
	var p models.UserProfile
	if !s.Get(ctx, models.KeyUserProfile, &p) {
		return nil, false
	}
	return &p, true
}

func (s *Store) SearchHistory(ctx context.Context) []models.SearchHistoryEntry {
	var history []models.SearchHistoryEntry
	s.Get(ctx, models.KeySearchHistory, &history)
	return history
}

func (s *Store) Bookings(ctx context.Context) []models.Booking {
	var list []models.Booking
	s.Get(ctx, models.KeyBookings, &list)
	return list
}

func (s *Store) loadLocked(ctx context.Context, key string) []byte {
	if raw, ok := s.mirror[key]; ok {
		return raw
	}
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		s.fail("get", key, err)
		return nil
	}
	if raw != nil {
		s.mirror[key] = raw
	}
	return raw
}

func (s *Store) decodeLocked(ctx context.Context, key string, dst any) bool {
	raw := s.loadLocked(ctx, key)
	if raw == nil {
		return false
	}
	target := reflect.ValueOf(dst)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		s.fail("decode", key, errNilTarget)
		return false
	}
	// decode into a fresh value so a mismatch never leaves dst half filled
	fresh := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(raw, fresh.Interface()); err != nil {
		s.fail("decode", key, err)
		return false
	}
	target.Elem().Set(fresh.Elem())
	return true
}

func (s *Store) encodeLocked(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.fail("encode", key, err)
		return
	}
	// the mirror keeps the session usable even if the backend refuses the write
	s.mirror[key] = raw
	if err := s.kv.Set(ctx, key, raw); err != nil {
		s.fail("set", key, err)
	}
}

func (s *Store) fail(op, key string, err error) {
	metrics.IncStoreError(op)
	s.logger.Warn().Err(err).Str("op", op).Str("key", key).Msg("session store failure ignored")
}
