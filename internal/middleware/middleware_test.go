package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	secret := []byte("test-secret")

	handler := Auth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cid, ok := CustomerIDFromContext(r.Context())
		if ok {
			w.Header().Set("X-Test-Customer", cid)
		}
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid bearer token", func(t *testing.T) {
		tokenStr := signToken(t, secret, jwt.MapClaims{
			"customer_id": "cus_1",
			"exp":         time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, "cus_1", w.Header().Get("X-Test-Customer"))
	})

	t.Run("token from cookie", func(t *testing.T) {
		tokenStr := signToken(t, secret, jwt.MapClaims{
			"customer_id": "cus_2",
			"exp":         time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: tokenStr})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, "cus_2", w.Header().Get("X-Test-Customer"))
	})

	t.Run("missing token passes through anonymously", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-Test-Customer"))
	})

	t.Run("token signed with wrong secret is ignored", func(t *testing.T) {
		tokenStr := signToken(t, []byte("wrong"), jwt.MapClaims{"customer_id": "cus_3"})

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Empty(t, w.Header().Get("X-Test-Customer"))
	})
}

func TestRequireCustomer(t *testing.T) {
	secret := []byte("test-secret")
	chain := Auth(secret)(RequireCustomer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	t.Run("rejects anonymous requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		w := httptest.NewRecorder()

		chain.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("allows authenticated requests", func(t *testing.T) {
		tokenStr := signToken(t, secret, jwt.MapClaims{
			"customer_id": "cus_1",
			"exp":         time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		w := httptest.NewRecorder()

		chain.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("allows requests within burst", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cart/cart_1", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("throttles past the strict burst", func(t *testing.T) {
		var last int
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest(http.MethodPost, "/checkout/quote", nil)
			req.RemoteAddr = "10.0.0.2:1234"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			last = w.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})
}
