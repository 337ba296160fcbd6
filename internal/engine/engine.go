// Package engine narrows the FaunaDB driver to the single entry point the
// SDK needs: submit one expression, get one value or one error back.
package engine

import (
	"context"

	f "github.com/fauna/faunadb-go/v4/faunadb"
)

// Engine executes composed query expressions against the database.
type Engine interface {
	Query(ctx context.Context, expr f.Expr) (f.Value, error)
}
