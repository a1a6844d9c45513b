package api

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/serroba/webacl/internal/ws"
)

// handleWebSocket handles GET /ws. Clients subscribe to a resource and
// receive a message whenever its ACL is rewritten or removed.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)

		return
	}

	webID := WebIDFromContext(r.Context())

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)

		return
	}

	clientID := uuid.New().String()
	client := ws.NewClient(clientID, webID, conn)
	s.hub.Register(client)

	defer func() {
		s.hub.Unregister(client)
		_ = client.Close()
	}()

	// Optional initial subscription via query parameter.
	if resource := r.URL.Query().Get("resource"); resource != "" {
		s.subscribe(client, resource)
	}

	s.readLoop(client)
}

// readLoop processes client messages until the connection drops.
func (s *Server) readLoop(client *ws.Client) {
	for {
		msg, err := client.Receive()
		if err != nil {
			return
		}

		switch msg.Type {
		case ws.MessageTypeSubscribe:
			payload, ok := msg.Payload.(ws.SubscribePayload)
			if !ok || payload.Resource == "" {
				_ = client.SendError(ws.ErrorCodeInvalidMessage, "subscribe requires a resource")

				continue
			}

			s.subscribe(client, payload.Resource)
		default:
			_ = client.SendError(ws.ErrorCodeInvalidMessage, "unexpected message type")
		}
	}
}

// subscribe registers the client for a resource and confirms it.
func (s *Server) subscribe(client *ws.Client, resource string) {
	s.hub.Subscribe(client, resource)

	_ = client.Send(ws.Message{
		Type:    ws.MessageTypeSubscribed,
		Payload: ws.SubscribePayload{Resource: resource},
	})
}
