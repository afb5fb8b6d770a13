package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"atrika/internal/export"
	"atrika/internal/models"
	"atrika/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Remember bool   `json:"remember"`
}

type bookRequest struct {
	Offer      models.Offer     `json:"offer"`
	Class      models.FareClass `json:"class"`
	Passengers int              `json:"passengers"`
}

func decodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *HTTPServer) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.deps.Ready != nil {
		if err := s.deps.Ready(r.Context()); err != nil {
			s.logger.Warn().Err(err).Msg("readiness check failed")
			writeError(w, http.StatusServiceUnavailable, "session backend unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := s.deps.Accounts.Login(r.Context(), body.Email, body.Remember)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *HTTPServer) handleGuest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Accounts.Guest(r.Context()))
}

func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.deps.Accounts.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleMe(w http.ResponseWriter, r *http.Request) {
	user, _ := userFrom(r.Context())
	writeJSON(w, http.StatusOK, user)
}

func (s *HTTPServer) handleProfile(w http.ResponseWriter, r *http.Request) {
	d, err := s.deps.Accounts.Profile(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *HTTPServer) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var body models.Dashboard
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	d, err := s.deps.Accounts.SaveProfile(r.Context(), body)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *HTTPServer) handleDestinations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, map[string]any{"destinations": s.deps.Search.Suggest(q)})
}

func (s *HTTPServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	var q models.SearchQuery
	if err := decodeBody(r, &q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	offers, err := s.deps.Search.Search(r.Context(), &q)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"offers": offers})
}

func (s *HTTPServer) handleSearchHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"history": s.deps.Search.History(r.Context())})
}

func (s *HTTPServer) handleBook(w http.ResponseWriter, r *http.Request) {
	var body bookRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	booking, err := s.deps.Bookings.Book(r.Context(), body.Offer, body.Class, body.Passengers)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (s *HTTPServer) handleBookings(w http.ResponseWriter, r *http.Request) {
	filter := models.BookingFilter{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
		SortBy: strings.TrimSpace(r.URL.Query().Get("sort")),
	}
	writeJSON(w, http.StatusOK, map[string]any{"bookings": s.deps.Bookings.List(r.Context(), filter)})
}

func (s *HTTPServer) handleExport(w http.ResponseWriter, r *http.Request) {
	bookings := s.deps.Bookings.List(r.Context(), models.BookingFilter{})

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(s.now())))
	if err := export.Write(w, bookings); err != nil {
		s.logger.Error().Err(err).Msg("bookings export failed")
	}
}

func (s *HTTPServer) handleCancel(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "booking id is required")
		return
	}

	if err := s.deps.Bookings.Cancel(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": models.StatusCancelled})
}

func (s *HTTPServer) handleDeals(w http.ResponseWriter, r *http.Request) {
	budget := service.DefaultBudget
	if raw := strings.TrimSpace(r.URL.Query().Get("budget")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "budget must be an integer")
			return
		}
		budget = v
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"deals":      s.deps.Deals.Deals(budget),
		"countdowns": s.deps.Deals.Countdowns(),
	})
}

func (s *HTTPServer) handleBanner(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Deals.CurrentBanner())
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotLoggedIn):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrBookingNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrBookingNotCancellable):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidSearch),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidOffer):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
