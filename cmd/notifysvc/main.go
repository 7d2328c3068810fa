// notifysvc is the background delivery context: it receives push messages
// while the app is not in the foreground and renders them as system-level
// notifications. It shares nothing with the app but the push gateway.
package main

import (
	"context"
	"log"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/gags88/reminder-pwa/internal/config"
	"github.com/gags88/reminder-pwa/internal/push"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	listener := push.NewListener(cfg.NotifyListenAddr, func(msg push.Message) {
		if err := beeep.Notify(msg.Notification.Title, msg.Notification.Body, cfg.IconPath); err != nil {
			log.Printf("Failed to show notification: %v", err)
		}
	})

	if cfg.GatewayURL != "" {
		go func() {
			regCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			token, err := push.Register(regCtx, cfg.GatewayURL, cfg.AppID, cfg.DeliveryKey, listener.Endpoint())
			if err != nil {
				log.Printf("Push registration failed: %v", err)
				return
			}
			log.Printf("Registered for push deliveries, token %s", token)
		}()
	} else {
		log.Println("PUSH_GATEWAY_URL not set, accepting direct deliveries only")
	}

	log.Printf("Notifier listening on %s", cfg.NotifyListenAddr)
	if err := listener.Start(); err != nil {
		log.Fatalf("Notifier failed to start: %v", err)
	}
}
