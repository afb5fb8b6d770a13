package service

import (
	"context"
	"strings"
	"time"

	"atrika/internal/domain"
	"atrika/internal/events"
	"atrika/internal/models"

	"github.com/rs/zerolog"
)

type AccountService struct {
	store    domain.SessionStore
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
	now      func() time.Time
}

func NewAccountService(store domain.SessionStore, eventBus domain.EventPublisher, logger *zerolog.Logger) *AccountService {
	return &AccountService{
		store:    store,
		eventBus: eventBus,
		logger:   logger,
		now:      time.Now,
	}
}

// Login stores a fresh identity for email. No password is checked.
func (s *AccountService) Login(ctx context.Context, email string, remember bool) (*models.UserData, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	user := s.identity(email, models.NameFromEmail(email))
	s.store.Set(ctx, models.KeyUserData, user)
	if remember {
		s.store.Set(ctx, models.KeyRememberLogin, true)
	}

	s.logger.Info().Str("email", email).Bool("remember", remember).Msg("user logged in")
	s.publish(events.EventUserLoggedIn, events.UserEventPayload{Email: email})
	return &user, nil
}

func (s *AccountService) Guest(ctx context.Context) *models.UserData {
	user := s.identity(models.GuestEmail, models.GuestName)
	s.store.Set(ctx, models.KeyUserData, user)

	s.logger.Info().Msg("guest logged in")
	s.publish(events.EventUserLoggedIn, events.UserEventPayload{Email: models.GuestEmail, Guest: true})
	return &user
}

// Logout drops the identity. Bookings, history and profile stay for the next login.
func (s *AccountService) Logout(ctx context.Context) {
	email := ""
	if user, ok := s.store.User(ctx); ok {
		email = user.Email
	}
	s.store.ClearSession(ctx)

	s.logger.Info().Str("email", email).Msg("user logged out")
	s.publish(events.EventUserLoggedOut, events.UserEventPayload{Email: email})
}

// CurrentUser returns ErrNotLoggedIn when no identity is stored. Pages that
// need a user call it before anything else.
func (s *AccountService) CurrentUser(ctx context.Context) (*models.UserData, error) {
	user, ok := s.store.User(ctx)
	if !ok || user.Email == "" {
		return nil, ErrNotLoggedIn
	}
	return user, nil
}

func (s *AccountService) Profile(ctx context.Context) (*models.Dashboard, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	profile := models.DefaultProfile()
	if stored, ok := s.store.Profile(ctx); ok {
		profile = profile.Merge(*stored)
	}

	return &models.Dashboard{
		Name:        user.Name,
		Email:       user.Email,
		UserProfile: profile,
	}, nil
}

// SaveProfile writes the profile record and copies name and email onto the
// stored identity. Empty name or email keep the current values.
func (s *AccountService) SaveProfile(ctx context.Context, d models.Dashboard) (*models.Dashboard, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	s.store.Set(ctx, models.KeyUserProfile, d.UserProfile)

	if name := strings.TrimSpace(d.Name); name != "" {
		user.Name = name
	}
	if email := strings.TrimSpace(d.Email); email != "" {
		user.Email = email
	}
	s.store.Set(ctx, models.KeyUserData, *user)

	s.logger.Debug().Str("email", user.Email).Msg("profile saved")
	return s.Profile(ctx)
}

func (s *AccountService) identity(email, name string) models.UserData {
	return models.UserData{
		Email:      email,
		Name:       name,
		IsLoggedIn: true,
		LoginTime:  s.now().UTC(),
		Preferences: models.Preferences{
			Currency: models.DefaultCurrency,
			Theme:    models.DefaultTheme,
		},
	}
}

func (s *AccountService) publish(eventType string, payload events.UserEventPayload) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Msg("publish event error")
	}
}
