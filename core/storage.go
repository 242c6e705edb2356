package core

import "context"

// Partition keys.
const (
	KeyUsers        = "users"
	KeyProjects     = "projects"
	KeyMaterials    = "materials"
	KeyCitations    = "citations"
	KeySupervisions = "supervisions"
	KeyMessages     = "messages"
	KeyCurrentUser  = "currentUser"
)

// PartitionKeys lists the keys holding record arrays.
var PartitionKeys = []string{KeyUsers, KeyProjects, KeyMaterials, KeyCitations, KeySupervisions, KeyMessages}

// Storage is an origin-scoped string key-value store holding one JSON document per key.
type Storage interface {
	// GetItem returns the value at key. ok is false when the key is absent.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Close() error
}
