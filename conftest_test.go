package faunakit

import (
	"context"

	f "github.com/fauna/faunadb-go/v4/faunadb"
)

// mockEngine implements engine.Engine for tests. It records every submitted
// expression and returns whatever queryFn says.
type mockEngine struct {
	queryFn func(ctx context.Context, expr f.Expr) (f.Value, error)
	exprs   []f.Expr
}

func (m *mockEngine) Query(ctx context.Context, expr f.Expr) (f.Value, error) {
	m.exprs = append(m.exprs, expr)
	if m.queryFn != nil {
		return m.queryFn(ctx, expr)
	}
	return nil, nil
}

// newTestClient wires a client directly onto a mock engine.
func newTestClient(eng *mockEngine) *Client {
	return &Client{engine: eng, pageSize: defaultPageSize}
}

func (m *mockEngine) lastExpr() f.Expr {
	if len(m.exprs) == 0 {
		return nil
	}
	return m.exprs[len(m.exprs)-1]
}
