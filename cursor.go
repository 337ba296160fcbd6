package faunakit

import (
	"github.com/faunakit/faunakit/internal/query"
)

// Cursor marks a pagination boundary. It is either an opaque token handed
// back by the engine, or a composite collection+ref pair; the composite form
// is rewritten into the engine's native reference before submission, since
// the engine rejects composite objects directly.
type Cursor struct {
	inner query.Cursor
}

// OpaqueCursor wraps an engine-issued pagination token (typically the
// before/after value from a previous page response). It is passed through to
// the engine verbatim.
func OpaqueCursor(token interface{}) Cursor {
	return Cursor{inner: query.Opaque(token)}
}

// CompositeCursor identifies a document boundary by collection name and ref.
func CompositeCursor(collection, ref string) Cursor {
	return Cursor{inner: query.Composite(collection, ref)}
}
