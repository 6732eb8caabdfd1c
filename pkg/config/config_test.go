package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.Nil(t, err)
	assert.Equal(t, ModeMock, cfg.BackendMode, "mock is the default backend")
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	t.Setenv("BACKEND_MODE", "hostname-sniffing")
	_, err := Load()
	assert.NotNil(t, err)
}

func TestLoadLiveMode(t *testing.T) {
	t.Setenv("BACKEND_MODE", "live")
	t.Setenv("FIREBASE_PROJECT_ID", "quester-prod")
	cfg, err := Load()
	require.Nil(t, err)
	assert.Equal(t, ModeLive, cfg.BackendMode)
	assert.Equal(t, "quester-prod", cfg.FirebaseProjectID)
}
