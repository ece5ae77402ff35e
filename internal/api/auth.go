package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wayfinder/wayfinder-api/internal/config"
)

type contextKey string

const authUserContextKey contextKey = "authUser"

// AuthenticatedUser is the JWT-derived principal for a request
type AuthenticatedUser struct {
	ID string
}

// ContextWithUser stores the authenticated user into context
func ContextWithUser(ctx context.Context, user AuthenticatedUser) context.Context {
	return context.WithValue(ctx, authUserContextKey, user)
}

// UserFromContext extracts the authenticated user from context
func UserFromContext(ctx context.Context) (AuthenticatedUser, bool) {
	user, ok := ctx.Value(authUserContextKey).(AuthenticatedUser)
	return user, ok
}

// requireAuth verifies the bearer token issued by the external auth
// provider and loads the acting user into the request context. Token
// issuance itself is out of scope here.
func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "you must be authenticated to perform this action")
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		userID, err := parseSubject(tokenString, h.jwtConfig)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		// The token may outlive the account; confirm the user still exists.
		if _, err := h.service.GetUser(r.Context(), userID); err != nil {
			writeError(w, http.StatusUnauthorized, "unknown user")
			return
		}

		ctx := ContextWithUser(r.Context(), AuthenticatedUser{ID: userID})
		next(w, r.WithContext(ctx))
	}
}

func parseSubject(tokenString string, cfg config.JWTConfig) (string, error) {
	token, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (interface{}, error) {
			return cfg.Secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
	)
	if err != nil {
		return "", err
	}
	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", jwt.ErrTokenRequiredClaimMissing
	}
	return sub, nil
}
