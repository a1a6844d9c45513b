// Package api exposes stored ACL documents over HTTP and streams
// change notifications over WebSocket.
package api

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/serroba/webacl/internal/rdf"
	"github.com/serroba/webacl/internal/storage"
	"github.com/serroba/webacl/internal/ws"
)

// Server handles HTTP requests for the ACL API.
type Server struct {
	store    storage.Store
	hub      *ws.Hub
	writer   rdf.Writer
	prefixes rdf.Prefixes
	upgrader websocket.Upgrader
}

// ServerConfig holds configuration for creating a server.
type ServerConfig struct {
	Store storage.Store
	Hub   *ws.Hub

	// Writer serializes encoded documents. Defaults to a TurtleWriter.
	Writer rdf.Writer

	// Prefixes is the namespace table used on output.
	// Defaults to rdf.DefaultPrefixes().
	Prefixes rdf.Prefixes
}

// NewServer creates a new API server.
func NewServer(cfg ServerConfig) *Server {
	writer := cfg.Writer
	if writer == nil {
		writer = rdf.NewTurtleWriter()
	}

	prefixes := cfg.Prefixes
	if prefixes == nil {
		prefixes = rdf.DefaultPrefixes()
	}

	return &Server{
		store:    cfg.Store,
		hub:      cfg.Hub,
		writer:   writer,
		prefixes: prefixes,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool {
				return true // Allow all origins for demo
			},
		},
	}
}

// Handler returns an http.Handler with all routes configured.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// ACL document endpoints (require auth)
	mux.Handle("/acl/", s.authMiddleware(http.HandlerFunc(s.handleACL)))

	// WebSocket endpoint (requires auth)
	mux.Handle("/ws", s.authMiddleware(http.HandlerFunc(s.handleWebSocket)))

	return mux
}

// handleACL routes GET, PUT and DELETE requests for /acl/{resource}.
func (s *Server) handleACL(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleGetACL(w, r)
	case http.MethodPut:
		s.handlePutACL(w, r)
	case http.MethodDelete:
		s.handleDeleteACL(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
