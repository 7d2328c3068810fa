package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the binaries need from the environment. Values
// are read once at startup; there is no reload.
type Config struct {
	// Firestore settings
	ProjectID       string
	CredentialsFile string

	// Push gateway settings. GatewayURL empty means push registration is
	// skipped and the app runs with in-app notifications only.
	GatewayURL  string
	AppID       string
	DeliveryKey string

	// Listen addresses for push deliveries: one for the foreground app,
	// one for the background notifier.
	PushListenAddr   string
	NotifyListenAddr string

	// Notification assets
	IconPath  string
	SoundPath string

	// Log file for the foreground app. The TUI owns the terminal, so log
	// output has to go somewhere else.
	LogFile string
}

// Load reads .env (when present) and the environment. GOOGLE_CLOUD_PROJECT
// is the only required variable.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		ProjectID:        os.Getenv("GOOGLE_CLOUD_PROJECT"),
		CredentialsFile:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		GatewayURL:       os.Getenv("PUSH_GATEWAY_URL"),
		AppID:            getEnv("PUSH_APP_ID", "reminder-pwa"),
		DeliveryKey:      os.Getenv("PUSH_DELIVERY_KEY"),
		PushListenAddr:   getEnv("PUSH_LISTEN_ADDR", "127.0.0.1:8091"),
		NotifyListenAddr: getEnv("NOTIFY_LISTEN_ADDR", "127.0.0.1:8092"),
		IconPath:         os.Getenv("NOTIFY_ICON"),
		SoundPath:        os.Getenv("REMINDER_SOUND"),
		LogFile:          os.Getenv("REMINDER_LOG"),
	}

	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("GOOGLE_CLOUD_PROJECT environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
