package main

import (
	"log"
	"net/http"
	"time"

	"github.com/serroba/webacl/internal/api"
	"github.com/serroba/webacl/internal/storage"
	"github.com/serroba/webacl/internal/ws"
)

func main() {
	// Initialize store
	store := storage.NewMemoryStore()

	// Initialize WebSocket hub
	hub := ws.NewHub()

	// Initialize API server
	server := api.NewServer(api.ServerConfig{
		Store: store,
		Hub:   hub,
	})

	// Configure HTTP server with timeouts
	addr := ":8080"
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Starting server on %s", addr)

	if err := httpServer.ListenAndServe(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
