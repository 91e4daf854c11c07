package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/inkletter/inkletter/internal/auth"
	"github.com/inkletter/inkletter/internal/repository"
)

// minAuthDuration is the minimum time to spend on auth to prevent timing attacks.
const minAuthDuration = 200 * time.Millisecond

// publisherKey is the context key for the authenticated publisher username.
const publisherKey contextKey = "publisher"

// PublisherStore looks up stored publisher credentials.
// Implemented by *repository.Repository.
type PublisherStore interface {
	GetUserByUsername(ctx context.Context, username string) (*repository.PublisherUser, error)
}

// BasicAuthConfig holds configuration for the basic auth middleware.
type BasicAuthConfig struct {
	Logger *slog.Logger
	Store  PublisherStore
	// Realm is echoed in the WWW-Authenticate challenge.
	Realm string
}

// BasicAuth returns a middleware that authenticates publishers via
// HTTP Basic credentials. Missing, malformed, and wrong credentials all
// produce the same 401 challenge so the failure mode is not revealed.
func BasicAuth(cfg BasicAuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			// Ensure consistent timing regardless of outcome
			defer func() {
				elapsed := time.Since(startTime)
				if elapsed < minAuthDuration {
					time.Sleep(minAuthDuration - elapsed)
				}
			}()

			username, password, ok := r.BasicAuth()
			if !ok {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "missing_or_malformed_header"),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeChallenge(w, cfg.Realm)
				return
			}

			user, err := cfg.Store.GetUserByUsername(r.Context(), username)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					cfg.Logger.Warn("authentication failed",
						slog.String("reason", "unknown_user"),
						slog.String("ip", r.RemoteAddr),
						slog.String("endpoint", r.Method+" "+r.URL.Path),
						slog.String("request_id", GetRequestID(r.Context())),
					)
					writeChallenge(w, cfg.Realm)
					return
				}
				cfg.Logger.Error("database error during auth",
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			match, err := auth.VerifyPassword(password, user.PasswordHash)
			if err != nil || !match {
				cfg.Logger.Warn("authentication failed",
					slog.String("reason", "invalid_credentials"),
					slog.String("ip", r.RemoteAddr),
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				writeChallenge(w, cfg.Realm)
				return
			}

			cfg.Logger.Info("authentication successful",
				slog.String("username", user.Username),
				slog.String("ip", r.RemoteAddr),
				slog.String("endpoint", r.Method+" "+r.URL.Path),
				slog.String("request_id", GetRequestID(r.Context())),
			)

			ctx := context.WithValue(r.Context(), publisherKey, user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPublisher retrieves the authenticated publisher username from context.
func GetPublisher(ctx context.Context) string {
	if username, ok := ctx.Value(publisherKey).(string); ok {
		return username
	}
	return ""
}

// writeChallenge writes a 401 response with a Basic challenge.
// Uses the same body for all auth failures to prevent enumeration.
func writeChallenge(w http.ResponseWriter, realm string) {
	w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"authentication required","code":"UNAUTHORIZED"}`))
}
