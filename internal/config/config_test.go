package config

import "testing"

func TestLoadRequiresProject(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() succeeded without GOOGLE_CLOUD_PROJECT")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "reminder-app-81c4c")
	t.Setenv("PUSH_GATEWAY_URL", "")
	t.Setenv("PUSH_APP_ID", "")
	t.Setenv("PUSH_LISTEN_ADDR", "")
	t.Setenv("NOTIFY_LISTEN_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ProjectID != "reminder-app-81c4c" {
		t.Errorf("ProjectID = %q", cfg.ProjectID)
	}
	if cfg.AppID != "reminder-pwa" {
		t.Errorf("AppID default = %q", cfg.AppID)
	}
	if cfg.PushListenAddr != "127.0.0.1:8091" {
		t.Errorf("PushListenAddr default = %q", cfg.PushListenAddr)
	}
	if cfg.NotifyListenAddr != "127.0.0.1:8092" {
		t.Errorf("NotifyListenAddr default = %q", cfg.NotifyListenAddr)
	}
	if cfg.GatewayURL != "" {
		t.Errorf("GatewayURL = %q, want empty", cfg.GatewayURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "p")
	t.Setenv("PUSH_GATEWAY_URL", "https://push.example.com")
	t.Setenv("PUSH_APP_ID", "my-app")
	t.Setenv("PUSH_DELIVERY_KEY", "key-123")
	t.Setenv("REMINDER_SOUND", "/srv/notify.mp3")
	t.Setenv("NOTIFY_ICON", "/srv/icon-192.png")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.GatewayURL != "https://push.example.com" || cfg.AppID != "my-app" || cfg.DeliveryKey != "key-123" {
		t.Errorf("push settings = %+v", cfg)
	}
	if cfg.SoundPath != "/srv/notify.mp3" || cfg.IconPath != "/srv/icon-192.png" {
		t.Errorf("asset paths = %+v", cfg)
	}
}
