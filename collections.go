package faunakit

import (
	"context"

	f "github.com/fauna/faunadb-go/v4/faunadb"
)

// CollectionService manages collections.
type CollectionService struct {
	c *Client
}

// Create creates a collection. The engine responds with
// {ref, ts, history_days, name}.
func (s *CollectionService) Create(ctx context.Context, name string) (f.Value, error) {
	return s.c.query(ctx, "collection.create", f.CreateCollection(f.Obj{"name": name}))
}
