// Package ws pushes ACL-change notifications to subscribed clients
// over WebSocket connections.
package ws

// MessageType identifies the kind of WebSocket message.
type MessageType string

const (
	// Client to Server messages.
	MessageTypeSubscribe MessageType = "subscribe" // Client watches a resource's ACL

	// Server to Client messages.
	MessageTypeSubscribed MessageType = "subscribed" // Server confirms subscription
	MessageTypeUpdated    MessageType = "updated"    // Server pushes an ACL rewrite
	MessageTypeDeleted    MessageType = "deleted"    // Server pushes an ACL removal
	MessageTypeError      MessageType = "error"      // Server reports an error
)

// Message is the envelope for all WebSocket communication.
type Message struct {
	Type    MessageType `json:"type"`
	Payload any         `json:"payload,omitempty"`
}

// SubscribePayload asks for notifications about one resource's ACL.
type SubscribePayload struct {
	Resource string `json:"resource"`
}

// UpdatedPayload reports that a resource's ACL was rewritten.
type UpdatedPayload struct {
	Resource string `json:"resource"`
	Revision int    `json:"revision"`
	WebID    string `json:"webId"` // Agent that made the change
}

// DeletedPayload reports that a resource's ACL was removed.
type DeletedPayload struct {
	Resource string `json:"resource"`
	WebID    string `json:"webId"`
}

// ErrorPayload reports an error to the client.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes.
const (
	ErrorCodeInvalidMessage = "invalid_message"
	ErrorCodeInternalError  = "internal_error"
)
