package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("DEFAULT_ROOM", "")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "lobby", cfg.DefaultRoom)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, https://canvas.example.com")
	t.Setenv("DEFAULT_ROOM", "main")

	cfg := Load()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, []string{"http://localhost:5173", "https://canvas.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "main", cfg.DefaultRoom)
}

func TestAllowsOrigin(t *testing.T) {
	wildcard := Config{AllowedOrigins: []string{"*"}}
	assert.True(t, wildcard.AllowsOrigin("http://anywhere.example"))

	strict := Config{AllowedOrigins: []string{"http://localhost:5173"}}
	assert.True(t, strict.AllowsOrigin("http://localhost:5173"))
	assert.True(t, strict.AllowsOrigin("HTTP://LOCALHOST:5173"))
	assert.False(t, strict.AllowsOrigin("http://evil.example"))
}
