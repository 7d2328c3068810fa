package push

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Handler receives one decoded delivery. It runs on the server goroutine and
// should hand the message off quickly.
type Handler func(Message)

// Listener is the delivery endpoint the gateway pushes to. Both execution
// contexts run one: the foreground app forwards messages into the UI, the
// background notifier renders system notifications.
type Listener struct {
	addr    string
	handler Handler
	e       *echo.Echo
}

func NewListener(addr string, handler Handler) *Listener {
	l := &Listener{
		addr:    addr,
		handler: handler,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	e.POST("/push", l.handleDelivery)
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	l.e = e
	return l
}

// Endpoint is the URL the gateway should deliver to, as sent during
// registration.
func (l *Listener) Endpoint() string {
	return "http://" + l.addr + "/push"
}

// Start blocks serving deliveries until Shutdown or a listen error.
func (l *Listener) Start() error {
	err := l.e.Start(l.addr)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (l *Listener) Shutdown(ctx context.Context) error {
	return l.e.Shutdown(ctx)
}

func (l *Listener) handleDelivery(c echo.Context) error {
	var msg Message
	if err := c.Bind(&msg); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if msg.Notification.Title == "" && msg.Notification.Body == "" {
		return c.NoContent(http.StatusBadRequest)
	}

	l.handler(msg)

	return c.NoContent(http.StatusAccepted)
}
