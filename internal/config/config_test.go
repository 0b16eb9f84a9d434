package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("COMMERCE_BASE_URL", "https://commerce.example.com")
		t.Setenv("COMMERCE_PUBLISHABLE_KEY", "pk_test_abc")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "https://commerce.example.com", cfg.CommerceBaseURL)
		assert.Equal(t, "pk_test_abc", cfg.PublishableKey)
		assert.Equal(t, "secret", cfg.JWTSecret)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
	})

	t.Run("Port defaults when unset", func(t *testing.T) {
		t.Setenv("COMMERCE_BASE_URL", "https://commerce.example.com")
		t.Setenv("APP_PORT", "")

		cfg := LoadConfig()
		assert.Equal(t, "8080", cfg.AppPort)
	})
}
