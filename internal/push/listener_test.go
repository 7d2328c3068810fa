package push

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func deliver(l *Listener, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	l.e.ServeHTTP(rec, req)
	return rec
}

func TestListenerDelivery(t *testing.T) {
	var got []Message
	l := NewListener("127.0.0.1:0", func(m Message) {
		got = append(got, m)
	})

	rec := deliver(l, `{"notification":{"title":"Reminder due soon","body":"\"Pay rent\" is due in 3 days!"}}`)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusAccepted)
	}
	if len(got) != 1 {
		t.Fatalf("handler invoked %d times, want 1", len(got))
	}
	if got[0].Notification.Title != "Reminder due soon" {
		t.Errorf("title = %q", got[0].Notification.Title)
	}
	if !strings.Contains(got[0].Notification.Body, "Pay rent") {
		t.Errorf("body = %q", got[0].Notification.Body)
	}
}

func TestListenerRejectsMalformedPayloads(t *testing.T) {
	invoked := 0
	l := NewListener("127.0.0.1:0", func(Message) { invoked++ })

	tests := []struct {
		name string
		body string
	}{
		{"not json", `{{{`},
		{"empty notification", `{"notification":{}}`},
		{"no notification", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := deliver(l, tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}

	if invoked != 0 {
		t.Errorf("handler invoked %d times for malformed payloads", invoked)
	}
}

func TestListenerHealth(t *testing.T) {
	l := NewListener("127.0.0.1:0", func(Message) {})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	l.e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestListenerEndpoint(t *testing.T) {
	l := NewListener("127.0.0.1:8091", func(Message) {})
	if got := l.Endpoint(); got != "http://127.0.0.1:8091/push" {
		t.Errorf("Endpoint() = %q", got)
	}
}
