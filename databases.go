package faunakit

import (
	"context"

	f "github.com/fauna/faunadb-go/v4/faunadb"
)

// DatabaseService manages databases and their access keys.
type DatabaseService struct {
	c *Client
}

// Create creates a database. The engine responds with {ref, ts, name}.
func (s *DatabaseService) Create(ctx context.Context, name string) (f.Value, error) {
	return s.c.query(ctx, "database.create", f.CreateDatabase(f.Obj{"name": name}))
}

// Get returns the database descriptor.
func (s *DatabaseService) Get(ctx context.Context, name string) (f.Value, error) {
	return s.c.query(ctx, "database.get", f.Get(f.Database(name)))
}

// CreateServerKey mints a server-role key scoped to the named database.
func (s *DatabaseService) CreateServerKey(ctx context.Context, name string) (f.Value, error) {
	return s.c.query(ctx, "database.create_key", f.CreateKey(f.Obj{
		"database": f.Database(name),
		"role":     "server",
	}))
}

// Paginate lists the child databases of the named database as a paginated
// reference sequence. size 0 means the client's default.
func (s *DatabaseService) Paginate(ctx context.Context, name string, size int) (f.Value, error) {
	if size <= 0 {
		size = s.c.pageSize
	}
	return s.c.query(ctx, "database.paginate",
		f.Paginate(f.ScopedDatabases(f.Database(name)), f.Size(size)))
}
