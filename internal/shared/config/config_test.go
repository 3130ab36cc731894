package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.GetServerAddress())
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.CORS.AllowAllOrigins())
	assert.Equal(t, "https://api.solapi.com", cfg.SMS.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Korail.SearchTimeout)
	assert.False(t, cfg.HasKorailCredentials())
	assert.False(t, cfg.HasNotificationRecipient())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("KORAIL_USERNAME", "user")
	t.Setenv("KORAIL_PASSWORD", "pass")
	t.Setenv("NOTIFICATION_PHONE", "01012345678")
	t.Setenv("KORAIL_RESERVE_TIMEOUT", "45s")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://app.example.com")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.GetServerAddress())
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.HasKorailCredentials())
	assert.True(t, cfg.HasNotificationRecipient())
	assert.Equal(t, 45*time.Second, cfg.Korail.ReserveTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.CORS.AllowAllOrigins())
}

func TestCredentialChecks_RequireBothHalves(t *testing.T) {
	t.Setenv("KORAIL_USERNAME", "user")

	cfg := Load()

	assert.False(t, cfg.HasKorailCredentials())
}
