// Package query composes FQL expressions for indexed pagination.
package query

import (
	f "github.com/fauna/faunadb-go/v4/faunadb"
)

type cursorKind int

const (
	cursorOpaque cursorKind = iota
	cursorComposite
)

// Cursor marks a pagination boundary in one of two forms: an opaque token
// returned by the engine, or a composite collection+ref pair supplied by the
// caller. The engine rejects composite pairs directly, so Expr rewrites them
// into a native reference.
type Cursor struct {
	kind       cursorKind
	token      interface{}
	collection string
	ref        string
}

// Opaque builds a cursor from an engine-issued pagination token.
func Opaque(token interface{}) Cursor {
	return Cursor{kind: cursorOpaque, token: token}
}

// Composite builds a cursor from a collection name and a document ref.
func Composite(collection, ref string) Cursor {
	return Cursor{kind: cursorComposite, collection: collection, ref: ref}
}

// Native returns the engine-native form of the cursor. Opaque tokens pass
// through verbatim; composite pairs become a collection-scoped reference.
func (c Cursor) Native() interface{} {
	switch c.kind {
	case cursorComposite:
		return f.RefCollection(f.Collection(c.collection), c.ref)
	default:
		return c.token
	}
}

// PageRequest describes one page of an index match set. Size must already be
// resolved to a concrete value; the default is applied at the public API
// boundary, not here.
type PageRequest struct {
	Index  string
	Scope  string      // optional child-database scope for the index
	Term   interface{} // optional term(s) filtering the match
	Size   int
	Before *Cursor
	After  *Cursor
}

// Match returns the index-match set expression for the request.
func (r PageRequest) Match() f.Expr {
	index := f.Expr(f.Index(r.Index))
	if r.Scope != "" {
		index = f.ScopedIndex(r.Index, f.Database(r.Scope))
	}
	if r.Term != nil {
		return f.MatchTerm(index, r.Term)
	}
	return f.Match(index)
}

// Refs returns the paginated match set: match → paginate.
func (r PageRequest) Refs() f.Expr {
	opts := []f.OptionalParameter{f.Size(r.Size)}
	if r.After != nil {
		opts = append(opts, f.After(r.After.Native()))
	}
	if r.Before != nil {
		opts = append(opts, f.Before(r.Before.Native()))
	}
	return f.Paginate(r.Match(), opts...)
}

// Docs returns the full page expression: match → paginate → map(get),
// resolving every matched reference to its document.
func (r PageRequest) Docs() f.Expr {
	return f.Map(r.Refs(), f.Lambda("ref", f.Get(f.Var("ref"))))
}
