// Package push is the boundary to the external push-messaging gateway. The
// gateway's transport and delivery guarantees are opaque; this package only
// decodes what it delivers and registers where deliveries should go.
package push

// Notification is the user-visible part of a delivery.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Message is the payload shape the gateway delivers, to the foreground app
// and the background notifier alike.
type Message struct {
	Notification Notification `json:"notification"`
}
