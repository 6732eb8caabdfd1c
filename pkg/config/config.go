package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Backend modes. The mode is resolved exactly once at startup and handed
// to the factory that builds the collaborator set; nothing downstream is
// allowed to re-derive it.
const (
	ModeMock = "mock"
	ModeLive = "live"
)

type Config struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	BackendMode string   `env:"BACKEND_MODE" envDefault:"mock"`
	CORSHosts   []string `env:"CORS_HOSTS" envSeparator:","`
	HostURL     string   `env:"HOST_URL" envDefault:"http://localhost:8080"`

	FirebaseProjectID       string `env:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsJSON string `env:"FIREBASE_CREDENTIALS_JSON"`
	StorageBucket           string `env:"STORAGE_BUCKET"`

	ResendKey        string `env:"RESEND_KEY"`
	LeadsNotifyEmail string `env:"LEADS_NOTIFY_EMAIL"`

	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	AssistModel   string `env:"ASSIST_MODEL" envDefault:"gpt-4o-mini"`

	GeocodeBaseURL string `env:"GEOCODE_BASE_URL" envDefault:"https://nominatim.openstreetmap.org"`

	// LocalUID is the identity every request runs as in mock mode.
	LocalUID string `env:"LOCAL_UID" envDefault:"local-admin"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.BackendMode != ModeMock && cfg.BackendMode != ModeLive {
		return Config{}, fmt.Errorf("unknown backend mode %q", cfg.BackendMode)
	}
	return cfg, nil
}
