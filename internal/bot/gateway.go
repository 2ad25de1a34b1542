package bot

import "context"

// Message is an inbound chat-message event from the messaging gateway.
type Message struct {
	ChatID    int64
	MessageID int
	FromBot   bool // only bot-authored order notifications are eligible
	Text      string
}

// Activation is an inbound print-action activation event.
type Activation struct {
	ID        string // gateway activation id, acknowledged exactly once
	ChatID    int64
	MessageID int
	Payload   string
}

// Action is the interactive affordance attached to an order message. Payload
// is the encoded field set; the gateway carries it back opaquely on
// activation.
type Action struct {
	Label   string
	Payload string
}

// Document is a file delivered to a chat.
type Document struct {
	Name    string
	Bytes   []byte
	Caption string
}

// Gateway is the injected messaging-gateway capability. All calls are
// point-in-time network operations; a failed call means the user retries by
// re-activating the action.
type Gateway interface {
	AttachAction(ctx context.Context, chatID int64, messageID int, a Action) error
	SendDocument(ctx context.Context, chatID int64, d Document) error
	Acknowledge(ctx context.Context, activationID, text string) error
}
