package middleware

import (
	"context"
	"net/http"
	"strings"

	"freshcatch-be/internal/transport"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	CustomerIDKey  contextKey = "customerID"
	TokenClaimsKey contextKey = "jwtClaims"
)

// Auth parses the customer's bearer token when present and stashes the
// customer id in the request context. Requests without a valid token
// pass through anonymously; route groups that need an identity stack
// RequireCustomer on top.
func Auth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := extractBearer(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				return secret, nil
			})
			if err != nil || !token.Valid {
				next.ServeHTTP(w, r)
				return
			}

			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				ctx := context.WithValue(r.Context(), TokenClaimsKey, claims)
				if cid, ok := claims["customer_id"].(string); ok {
					ctx = context.WithValue(ctx, CustomerIDKey, cid)
				}
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireCustomer rejects requests that did not authenticate as a
// customer.
func RequireCustomer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CustomerIDFromContext(r.Context()); !ok {
			transport.WriteError(w, http.StatusUnauthorized, "unauthorized", "customer token required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CustomerIDFromContext returns the authenticated customer id, if any.
func CustomerIDFromContext(ctx context.Context) (string, bool) {
	cid, ok := ctx.Value(CustomerIDKey).(string)
	return cid, ok && cid != ""
}

func extractBearer(r *http.Request) string {
	// Cookie first, Authorization header as fallback, matching how
	// the storefront stores the platform session token.
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
