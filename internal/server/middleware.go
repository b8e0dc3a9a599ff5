package server

import (
	"context"
	"net/http"
)

type contextKey string

const userIDKey contextKey = "userID"

// authenticate resolves the bearer token to a user id and stores it in the
// request context. Any failure is a uniform 401 with a JSON body.
func (s *Server) authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := s.auth.UserIDFromRequest(r)
		if userID == "" {
			s.respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	}
}

func userIDFrom(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}
