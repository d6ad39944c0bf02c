package middleware

import (
	"context"
	"net/http"
	"strings"

	"batepapo/internal/api/apierr"
)

type contextKey string

const requesterContextKey contextKey = "requester"

// RequesterHeader carries the caller's claimed participant name.
// It is an unverified identity: there are no credentials behind it.
const RequesterHeader = "User"

// Identity creates middleware that extracts the requester name from the
// User header. A missing or blank header is rejected with 422.
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requester := strings.TrimSpace(r.Header.Get(RequesterHeader))
			if requester == "" {
				apierr.WriteError(w, apierr.NewMissingRequesterError())
				return
			}

			ctx := context.WithValue(r.Context(), requesterContextKey, requester)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequester returns the requester name from the request context
func GetRequester(ctx context.Context) string {
	requester, _ := ctx.Value(requesterContextKey).(string)
	return requester
}

// MustGetRequester returns the requester name or panics
func MustGetRequester(ctx context.Context) string {
	requester := GetRequester(ctx)
	if requester == "" {
		panic("no requester in context - identity middleware not applied?")
	}
	return requester
}
