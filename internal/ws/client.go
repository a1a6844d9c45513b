package ws

import (
	"encoding/json"
	"sync"
)

// Conn abstracts a WebSocket connection for testability.
type Conn interface {
	WriteJSON(v any) error
	ReadJSON(v any) error
	Close() error
}

// Client represents a connected watcher.
type Client struct {
	ID    string
	WebID string
	conn  Conn

	mu       sync.Mutex
	resource string // Currently watched resource
}

// NewClient creates a new client wrapper.
func NewClient(id, webID string, conn Conn) *Client {
	return &Client{
		ID:    id,
		WebID: webID,
		conn:  conn,
	}
}

// Send sends a message to the client.
func (c *Client) Send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.WriteJSON(msg)
}

// SendError sends an error message to the client.
func (c *Client) SendError(code, message string) error {
	return c.Send(Message{
		Type: MessageTypeError,
		Payload: ErrorPayload{
			Code:    code,
			Message: message,
		},
	})
}

// Receive reads a message from the client.
func (c *Client) Receive() (Message, error) {
	var raw struct {
		Type    MessageType     `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}

	if err := c.conn.ReadJSON(&raw); err != nil {
		return Message{}, err
	}

	msg := Message{Type: raw.Type}

	switch raw.Type {
	case MessageTypeSubscribe:
		var payload SubscribePayload
		if err := json.Unmarshal(raw.Payload, &payload); err != nil {
			return Message{}, err
		}

		msg.Payload = payload
	default:
		// Server-to-client messages - keep raw payload
		msg.Payload = raw.Payload
	}

	return msg, nil
}

// Close closes the client connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Resource returns the resource the client is watching.
func (c *Client) Resource() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.resource
}

// SetResource sets the resource the client is watching.
func (c *Client) SetResource(resource string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resource = resource
}
