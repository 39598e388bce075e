package config

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedacted_MasksSecrets(t *testing.T) {
	cfg := validConfig(t)
	cfg.App.AdminSecret = "ADMIN-SECRET-XYZ"
	cfg.Passes.Signing.KeyPassword = "PASS-KEY-XYZ"
	cfg.Orders.Signing.KeyPassword = "ORDER-KEY-XYZ"

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.NotContains(t, out, "ADMIN-SECRET-XYZ")
	assert.NotContains(t, out, "PASS-KEY-XYZ")
	assert.NotContains(t, out, "ORDER-KEY-XYZ")
	assert.Contains(t, out, redacted)
	assert.Contains(t, out, cfg.Passes.Signing.CertPath)
}

func TestRedacted_KeepsOriginal(t *testing.T) {
	cfg := validConfig(t)
	cfg.Passes.Signing.KeyPassword = "secret"

	safe := cfg.Redacted()

	assert.Equal(t, "admin", cfg.App.AdminSecret)
	assert.Equal(t, "secret", cfg.Passes.Signing.KeyPassword)
	assert.Equal(t, redacted, safe.App.AdminSecret)
	assert.Empty(t, safe.Orders.Signing.KeyPassword)
}
