package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/taskhub/internal/common"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// authMiddleware verifies the bearer token and resolves the account it
// belongs to. The caller id is threaded through the request context and
// handed to the services as an explicit argument; no handler reads
// ambient identity.
func (s *RESTServer) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.writeError(w, r, common.ErrInvalidToken)
			return
		}

		userID, err := s.auth.VerifyToken(token)
		if err != nil {
			s.writeError(w, r, common.ErrInvalidToken)
			return
		}

		// a signed token for a since-removed account is still unauthorized
		if _, err := s.auth.GetUser(r.Context(), userID); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				s.writeError(w, r, common.ErrInvalidToken)
				return
			}
			s.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// callerID returns the authenticated user id stored by authMiddleware.
func callerID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}
