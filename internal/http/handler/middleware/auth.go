package middleware

import (
	"net/http"
	"strings"

	"bookshelf/internal/auth"
	"bookshelf/pkg/jwt"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Authenticate attaches the identity of a valid bearer token to the request context.
// Requests without a usable token continue anonymously; resolvers decide what needs a user.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := BearerToken(r.Header.Get("Authorization"))
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.validator.Validate(token)
		if err != nil {
			m.logs.Debugw("ignoring unusable bearer token",
				"error", err,
				"request_id", chimiddleware.GetReqID(r.Context()))
			next.ServeHTTP(w, r)
			return
		}

		ctx := auth.WithIdentity(r.Context(), auth.Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
			Email:    claims.Email,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerToken returns the last space separated part of an Authorization header, so
// both "Bearer <token>" and a bare token are accepted.
func BearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
