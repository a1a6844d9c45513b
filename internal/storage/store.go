// Package storage persists serialized ACL documents keyed by the
// resource URL they protect.
package storage

import (
	"errors"
	"time"
)

// Common errors.
var (
	ErrACLNotFound = errors.New("acl document not found")
)

// Record is one stored ACL document.
type Record struct {
	// Resource is the URL of the resource the ACL protects.
	Resource string

	// Body is the serialized triple document.
	Body []byte

	// Revision increments on every Put for the same resource.
	Revision int

	// UpdatedAt is the time of the last Put.
	UpdatedAt time.Time
}

// Store defines the interface for persisting ACL documents.
// Implementations can use in-memory storage, databases, or other
// backends.
type Store interface {
	// Put stores the serialized ACL for a resource, replacing any
	// previous version, and returns the new revision.
	Put(resource string, body []byte) (int, error)

	// Get retrieves the stored ACL for a resource.
	// Returns ErrACLNotFound if none exists.
	Get(resource string) (Record, error)

	// Delete removes the stored ACL for a resource.
	// Returns ErrACLNotFound if none exists.
	Delete(resource string) error

	// Exists checks whether a resource has a stored ACL.
	Exists(resource string) (bool, error)
}
