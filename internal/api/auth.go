package api

import (
	"context"
	"errors"
	"net/http"

	"atrika/internal/domain"
	"atrika/internal/models"
	"atrika/internal/service"
)

type userCtxKey struct{}

// loginGate lets a request through only while an identity is stored, the
// way every page except login bounces to the loading screen otherwise.
type loginGate struct {
	accounts domain.AccountService
}

func newLoginGate(accounts domain.AccountService) *loginGate {
	return &loginGate{accounts: accounts}
}

func (g *loginGate) Wrap(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := g.accounts.CurrentUser(r.Context())
		if err != nil {
			if errors.Is(err, service.ErrNotLoggedIn) {
				writeError(w, http.StatusUnauthorized, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "session unavailable")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), userCtxKey{}, user)))
	})
}

// userFrom returns the identity the gate resolved for this request.
func userFrom(ctx context.Context) (*models.UserData, bool) {
	u, ok := ctx.Value(userCtxKey{}).(*models.UserData)
	return u, ok
}
