package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const installationFile = "installation-id"

// registrationRequest is what the gateway expects: the fixed application
// identity and delivery key from configuration, plus this installation and
// where to deliver.
type registrationRequest struct {
	AppID          string `json:"app_id"`
	DeliveryKey    string `json:"delivery_key"`
	InstallationID string `json:"installation_id"`
	Endpoint       string `json:"endpoint"`
}

type registrationResponse struct {
	Token string `json:"token"`
}

// Register announces this installation's delivery endpoint to the gateway
// and returns the delivery token it hands back. Registration happens once
// per startup; failures are the caller's to log and ignore, the app works
// without push.
func Register(ctx context.Context, gatewayURL, appID, deliveryKey, endpoint string) (string, error) {
	id, err := installationID()
	if err != nil {
		return "", fmt.Errorf("failed to resolve installation id: %w", err)
	}

	body, err := json.Marshal(registrationRequest{
		AppID:          appID,
		DeliveryKey:    deliveryKey,
		InstallationID: id,
		Endpoint:       endpoint,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode registration: %w", err)
	}

	url := strings.TrimRight(gatewayURL, "/") + "/register"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build registration request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach push gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("push gateway rejected registration: %s", resp.Status)
	}

	var out registrationResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode registration response: %w", err)
	}

	return out.Token, nil
}

// installationID returns the stable per-install identifier, minting and
// persisting one under the user config dir on first run.
func installationID() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "reminder-pwa")

	path := filepath.Join(dir, installationFile)
	if b, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(b)); id != "" {
			return id, nil
		}
	}

	id := uuid.New().String()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", err
	}

	return id, nil
}
