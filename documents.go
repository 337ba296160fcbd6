package faunakit

import (
	"context"

	f "github.com/fauna/faunadb-go/v4/faunadb"
)

// DocumentService manages documents within one collection.
type DocumentService struct {
	c          *Client
	collection string
}

// DocumentWithID pairs a caller-chosen document ref with its data, for
// creation with custom ids.
type DocumentWithID struct {
	ID   string
	Data interface{}
}

// Create creates a single document. Defined as the one-element bulk create:
// the result is a one-element sequence, identical to
// CreateMany([]interface{}{doc}).
func (s *DocumentService) Create(ctx context.Context, doc interface{}) (f.Value, error) {
	return s.createMany(ctx, "document.create", []interface{}{doc})
}

// CreateMany creates one document per element of docs, in one round trip.
func (s *DocumentService) CreateMany(ctx context.Context, docs []interface{}) (f.Value, error) {
	return s.createMany(ctx, "document.create_many", docs)
}

func (s *DocumentService) createMany(ctx context.Context, op string, docs []interface{}) (f.Value, error) {
	expr := f.Map(
		f.Arr(docs),
		f.Lambda("doc", f.Create(
			f.Collection(s.collection),
			f.Obj{"data": f.Var("doc")},
		)),
	)
	return s.c.query(ctx, op, expr)
}

// CreateManyWithID creates one document per pair, each at its caller-chosen
// ref, in one round trip.
func (s *DocumentService) CreateManyWithID(ctx context.Context, docs []DocumentWithID) (f.Value, error) {
	items := make(f.Arr, len(docs))
	for i, d := range docs {
		items[i] = f.Arr{d.ID, d.Data}
	}
	expr := f.Map(
		items,
		f.Lambda(f.Arr{"id", "doc"}, f.Create(
			f.RefCollection(f.Collection(s.collection), f.Var("id")),
			f.Obj{"data": f.Var("doc")},
		)),
	)
	return s.c.query(ctx, "document.create_many_with_id", expr)
}

// Get resolves a document by ref.
func (s *DocumentService) Get(ctx context.Context, ref string) (f.Value, error) {
	return s.c.query(ctx, "document.get", f.Get(s.ref(ref)))
}

// Update merges data into the document's existing fields.
func (s *DocumentService) Update(ctx context.Context, ref string, data interface{}) (f.Value, error) {
	return s.c.query(ctx, "document.update", f.Update(s.ref(ref), f.Obj{"data": data}))
}

// Replace overwrites the document's data; fields not supplied are removed.
func (s *DocumentService) Replace(ctx context.Context, ref string, data interface{}) (f.Value, error) {
	return s.c.query(ctx, "document.replace", f.Replace(s.ref(ref), f.Obj{"data": data}))
}

// Delete removes the document and returns its last snapshot.
func (s *DocumentService) Delete(ctx context.Context, ref string) (f.Value, error) {
	return s.c.query(ctx, "document.delete", f.Delete(s.ref(ref)))
}

func (s *DocumentService) ref(id string) f.Expr {
	return f.RefCollection(f.Collection(s.collection), id)
}
