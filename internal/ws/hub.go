package ws

import (
	"sync"
)

// Hub manages WebSocket clients and broadcasts ACL-change events.
type Hub struct {
	mu sync.RWMutex

	// clients maps client ID to client
	clients map[string]*Client

	// resources maps resource URL to set of client IDs
	resources map[string]map[string]struct{}
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]*Client),
		resources: make(map[string]map[string]struct{}),
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client
}

// Unregister removes a client from the hub and any subscriptions.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	resource := client.Resource()
	if resource != "" {
		h.dropSubscription(resource, client.ID)
	}

	delete(h.clients, client.ID)
}

// Subscribe adds a client to a resource's broadcast list, replacing
// any previous subscription.
func (h *Hub) Subscribe(client *Client, resource string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	old := client.Resource()
	if old != "" && old != resource {
		h.dropSubscription(old, client.ID)
	}

	if h.resources[resource] == nil {
		h.resources[resource] = make(map[string]struct{})
	}

	h.resources[resource][client.ID] = struct{}{}
	client.SetResource(resource)
}

// Unsubscribe removes a client from a resource's broadcast list.
func (h *Hub) Unsubscribe(client *Client, resource string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.dropSubscription(resource, client.ID)

	if client.Resource() == resource {
		client.SetResource("")
	}
}

// dropSubscription removes a client ID from a resource set.
// Callers must hold the lock.
func (h *Hub) dropSubscription(resource, clientID string) {
	if clients, ok := h.resources[resource]; ok {
		delete(clients, clientID)

		if len(clients) == 0 {
			delete(h.resources, resource)
		}
	}
}

// Broadcast sends a message to all clients watching a resource.
func (h *Hub) Broadcast(resource string, msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clientIDs, ok := h.resources[resource]
	if !ok {
		return
	}

	for clientID := range clientIDs {
		client, ok := h.clients[clientID]
		if !ok {
			continue
		}

		// Send in goroutine to avoid blocking on slow clients
		go func(c *Client) {
			_ = c.Send(msg)
		}(client)
	}
}

// NotifyUpdated broadcasts that a resource's ACL was rewritten.
func (h *Hub) NotifyUpdated(resource string, revision int, webID string) {
	h.Broadcast(resource, Message{
		Type: MessageTypeUpdated,
		Payload: UpdatedPayload{
			Resource: resource,
			Revision: revision,
			WebID:    webID,
		},
	})
}

// NotifyDeleted broadcasts that a resource's ACL was removed.
func (h *Hub) NotifyDeleted(resource, webID string) {
	h.Broadcast(resource, Message{
		Type: MessageTypeDeleted,
		Payload: DeletedPayload{
			Resource: resource,
			WebID:    webID,
		},
	})
}

// WatcherCount returns the number of clients watching a resource.
func (h *Hub) WatcherCount(resource string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.resources[resource]; ok {
		return len(clients)
	}

	return 0
}

// TotalClients returns the total number of connected clients.
func (h *Hub) TotalClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}
