package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// UserIDHeader carries the caller's identity. The value is trusted, not
// verified; authentication is out of scope for this service.
const UserIDHeader = "X-User-Id"

type contextKey string

const userIDKey contextKey = "user_id"

// CurrentUser extracts the caller's user ID from the X-User-Id header and
// stores it in the request context. Requests with a missing, unparseable or
// nil UUID are rejected with 400 before any handler runs.
func CurrentUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(r.Header.Get(UserIDHeader))
		if err != nil || userID == uuid.Nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Message: "Missing or invalid X-User-Id"})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFrom returns the caller's user ID placed by CurrentUser.
func UserIDFrom(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
