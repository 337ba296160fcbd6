package faunakit

import (
	"context"

	f "github.com/fauna/faunadb-go/v4/faunadb"
)

// IndexService manages indexes and runs indexed queries, including the
// paginated document listing.
type IndexService struct {
	c *Client
}

// IndexOption configures index creation.
type IndexOption func(*indexConfig)

type indexConfig struct {
	terms  f.Arr
	values f.Arr
}

// Terms declares the document data fields the index matches on.
func Terms(fields ...string) IndexOption {
	return func(c *indexConfig) {
		for _, name := range fields {
			c.terms = append(c.terms, f.Obj{"field": f.Arr{"data", name}})
		}
	}
}

// Values declares the document data fields the index returns per match.
func Values(fields ...string) IndexOption {
	return func(c *indexConfig) {
		for _, name := range fields {
			c.values = append(c.values, f.Obj{"field": f.Arr{"data", name}})
		}
	}
}

// Create creates an index over the source collection. Without Terms or
// Values the index matches every document and yields references.
func (s *IndexService) Create(
	ctx context.Context, name, source string, opts ...IndexOption,
) (f.Value, error) {
	var cfg indexConfig
	for _, o := range opts {
		o(&cfg)
	}

	params := f.Obj{"name": name, "source": f.Collection(source)}
	if len(cfg.terms) > 0 {
		params["terms"] = cfg.terms
	}
	if len(cfg.values) > 0 {
		params["values"] = cfg.values
	}
	return s.c.query(ctx, "index.create", f.CreateIndex(params))
}

// Match resolves the first document matching term in the named index.
func (s *IndexService) Match(ctx context.Context, index string, term interface{}) (f.Value, error) {
	return s.c.query(ctx, "index.match", f.Get(f.MatchTerm(f.Index(index), term)))
}

// ListRefs lists the references matched by the index as a paginated
// sequence. size 0 means the client's default.
func (s *IndexService) ListRefs(ctx context.Context, index string, size int) (f.Value, error) {
	req := s.c.pageRequest(index, PageOptions{Size: size})
	return s.c.query(ctx, "index.list_refs", req.Refs())
}

// ListDocs fetches one page of full documents matched by the index:
// match(index, scope?, term?) → paginate(size, before?, after?) → map(get).
// The engine's page response comes back unchanged, cursors included.
func (s *IndexService) ListDocs(ctx context.Context, index string, opts PageOptions) (f.Value, error) {
	req := s.c.pageRequest(index, opts)
	return s.c.query(ctx, "index.list_docs", req.Docs())
}
