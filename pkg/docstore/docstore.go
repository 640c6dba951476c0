package docstore

import (
	"context"
	"errors"
)

// Document is one schemaless record as stored in a collection.
type Document = map[string]any

// ErrNoDocument is returned by lookups that match nothing.
var ErrNoDocument = errors.New("docstore: no matching document")

// Store is the port to the external document database. Collections are
// addressed by name; documents either live under an explicit key (Set/Get)
// or are appended with a generated key (Add).
type Store interface {
	// Set writes data under the given key, creating or replacing the document.
	Set(ctx context.Context, collection, key string, data Document) error

	// Get reads the document at key. The bool reports whether it exists.
	Get(ctx context.Context, collection, key string) (Document, bool, error)

	// Add appends data under a generated key.
	Add(ctx context.Context, collection string, data Document) error

	// FindByField returns the first document whose field equals value,
	// in unspecified order. ErrNoDocument if nothing matches.
	FindByField(ctx context.Context, collection, field string, value any) (Document, error)

	// Stream returns every document of the collection, order unspecified.
	Stream(ctx context.Context, collection string) ([]Document, error)
}
