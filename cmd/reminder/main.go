package main

import (
	"context"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gags88/reminder-pwa/internal/config"
	"github.com/gags88/reminder-pwa/internal/push"
	"github.com/gags88/reminder-pwa/internal/services"
	"github.com/gags88/reminder-pwa/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The TUI owns the terminal; send log output elsewhere.
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(os.Stderr)
	}

	ctx := context.Background()

	store, err := services.NewFirestoreService(ctx, cfg.ProjectID, cfg.CredentialsFile)
	if err != nil {
		log.Fatalf("Failed to create Firestore service: %v", err)
	}
	defer store.Close()

	// Foreground push deliveries surface as in-app toasts. Push is
	// optional: without a gateway the app still does everything else.
	var pushCh chan push.Message
	var listener *push.Listener
	if cfg.GatewayURL != "" {
		pushCh = make(chan push.Message, 16)
		listener = push.NewListener(cfg.PushListenAddr, func(msg push.Message) {
			select {
			case pushCh <- msg:
			default:
				log.Printf("Dropping push delivery, queue full")
			}
		})

		go func() {
			if err := listener.Start(); err != nil {
				log.Printf("Push listener stopped: %v", err)
			}
		}()

		go func() {
			regCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
			defer cancel()
			token, err := push.Register(regCtx, cfg.GatewayURL, cfg.AppID, cfg.DeliveryKey, listener.Endpoint())
			if err != nil {
				log.Printf("Push registration failed: %v", err)
				return
			}
			log.Printf("Registered for push deliveries, token %s", token)
		}()
	} else {
		log.Println("PUSH_GATEWAY_URL not set, running without push")
	}

	m := ui.NewModel(store, pushCh, cfg.SoundPath)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Failed to run UI: %v", err)
	}

	if listener != nil {
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := listener.Shutdown(shutCtx); err != nil {
			log.Printf("Push listener shutdown: %v", err)
		}
	}
}
