package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"

	"food-marketplace/internal/apperr"
	"food-marketplace/internal/auth"
	"food-marketplace/internal/domain"
	"food-marketplace/internal/logx"
)

// TokenVerifier parses a bearer token into the principal it was issued for.
type TokenVerifier interface {
	Verify(raw string) (domain.Principal, error)
}

// AccountLookup resolves the active account behind a principal.
type AccountLookup interface {
	Lookup(ctx context.Context, p domain.Principal) (*domain.Credentials, error)
}

// Authenticator verifies bearer tokens and loads the caller's account on every request.
type Authenticator struct {
	tokens   TokenVerifier
	accounts AccountLookup
	logger   logx.Logger
}

// NewAuthenticator returns an Authenticator.
func NewAuthenticator(tokens TokenVerifier, accounts AccountLookup, logger logx.Logger) *Authenticator {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Authenticator{tokens: tokens, accounts: accounts, logger: logger}
}

// Required rejects requests without a valid token for an active account.
func (a *Authenticator) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := auth.BearerToken(r.Header.Get("Authorization"))
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		p, err := a.resolve(r.Context(), raw)
		if err != nil {
			if errors.Is(err, apperr.ErrUnauthorized) || errors.Is(err, auth.ErrInvalidToken) {
				a.logger.Debug("auth rejected", logx.String("path", r.URL.Path), logx.Err(err))
				writeJSONError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			a.logger.Error("auth lookup failed", logx.String("path", r.URL.Path), logx.Err(err))
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
	})
}

// Optional attaches the caller when a valid token is present and serves
// anonymous requests otherwise.
func (a *Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw, ok := auth.BearerToken(r.Header.Get("Authorization")); ok {
			if p, err := a.resolve(r.Context(), raw); err == nil {
				r = r.WithContext(auth.WithPrincipal(r.Context(), p))
			} else {
				a.logger.Debug("optional auth ignored", logx.Err(err))
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Authenticator) resolve(ctx context.Context, raw string) (domain.Principal, error) {
	p, err := a.tokens.Verify(raw)
	if err != nil {
		return domain.Principal{}, err
	}
	c, err := a.accounts.Lookup(ctx, p)
	if err != nil {
		return domain.Principal{}, err
	}
	// the stored role wins, e.g. a customer promoted to admin
	return domain.Principal{ID: c.ID, Role: c.Role}, nil
}

// RequireRole answers 403 unless the authenticated caller has one of roles.
// It must run after Authenticator.Required.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := auth.PrincipalFrom(r.Context())
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !p.Is(roles...) {
				writeJSONError(w, http.StatusForbidden, roleMessage(roles))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func roleMessage(roles []domain.Role) string {
	if len(roles) == 1 {
		return string(roles[0]) + " access required"
	}
	return "access denied"
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, `{"error":"`+msg+`"}`)
}
