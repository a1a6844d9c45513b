package api

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/serroba/webacl/internal/acl"
	"github.com/serroba/webacl/internal/codec"
	"github.com/serroba/webacl/internal/rdf"
	"github.com/serroba/webacl/internal/storage"
)

const contentTypeTurtle = "text/turtle"

// handleGetACL handles GET /acl/{resource}.
func (s *Server) handleGetACL(w http.ResponseWriter, r *http.Request) {
	resource := extractResource(r.URL.Path)
	if resource == "" {
		http.Error(w, "resource is required", http.StatusBadRequest)

		return
	}

	record, err := s.store.Get(resource)
	if err != nil {
		if errors.Is(err, storage.ErrACLNotFound) {
			http.Error(w, "acl not found", http.StatusNotFound)

			return
		}

		http.Error(w, "internal server error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", contentTypeTurtle)

	if _, err := w.Write(record.Body); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

// handlePutACL handles PUT /acl/{resource}: the submitted triples are
// decoded, the resulting rules minimized, and the normalized
// serialization stored.
func (s *Server) handlePutACL(w http.ResponseWriter, r *http.Request) {
	resource := extractResource(r.URL.Path)
	if resource == "" {
		http.Error(w, "resource is required", http.StatusBadRequest)

		return
	}

	triples, err := rdf.Parse(r.Body)
	if err != nil {
		http.Error(w, "invalid triple document: "+err.Error(), http.StatusBadRequest)

		return
	}

	body, err := s.normalize(resource, triples)
	if err != nil {
		if errors.Is(err, codec.ErrUnsupportedAgentClass) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)

			return
		}

		http.Error(w, "internal server error", http.StatusInternalServerError)

		return
	}

	revision, err := s.store.Put(resource, body)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)

		return
	}

	if s.hub != nil {
		s.hub.NotifyUpdated(resource, revision, WebIDFromContext(r.Context()))
	}

	w.Header().Set("Content-Type", contentTypeTurtle)
	w.WriteHeader(http.StatusCreated)

	if _, err := w.Write(body); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

// handleDeleteACL handles DELETE /acl/{resource}.
func (s *Server) handleDeleteACL(w http.ResponseWriter, r *http.Request) {
	resource := extractResource(r.URL.Path)
	if resource == "" {
		http.Error(w, "resource is required", http.StatusBadRequest)

		return
	}

	if err := s.store.Delete(resource); err != nil {
		if errors.Is(err, storage.ErrACLNotFound) {
			http.Error(w, "acl not found", http.StatusNotFound)

			return
		}

		http.Error(w, "internal server error", http.StatusInternalServerError)

		return
	}

	if s.hub != nil {
		s.hub.NotifyDeleted(resource, WebIDFromContext(r.Context()))
	}

	w.WriteHeader(http.StatusNoContent)
}

// normalize round-trips raw triples through the rule model: decode,
// minimize, re-encode, serialize. Writer errors pass through as-is.
func (s *Server) normalize(resource string, triples []rdf.Triple) ([]byte, error) {
	groups, order := rdf.GroupBySubject(triples)

	doc := acl.NewDocument(resource)
	if err := codec.NewDecoder().Decode(doc, groups, order); err != nil {
		return nil, err
	}

	doc.MinimizeRules()

	var buf bytes.Buffer
	if err := codec.NewEncoder().EncodeTo(&buf, doc, s.writer, s.prefixes); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// extractResource extracts the resource identifier from a URL path.
func extractResource(path string) string {
	return strings.TrimPrefix(path, "/acl/")
}
