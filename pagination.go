package faunakit

import (
	"github.com/faunakit/faunakit/internal/query"
)

// PageOptions configures a paginated indexed listing. All fields are
// optional; the zero value means "first page of everything the index
// matches, at the client's default page size".
type PageOptions struct {
	// Scope names a child database hosting the index.
	Scope string
	// Term filters matches against the index's configured search term(s).
	// Use a faunadb.Arr for indexes with multiple terms.
	Term interface{}
	// Size bounds the page; 0 means the client's default (64 unless
	// overridden with WithDefaultPageSize).
	Size int
	// Before and After mark the page boundary. Typically only one is set;
	// when both are, each is normalized independently and the engine
	// arbitrates.
	Before *Cursor
	After  *Cursor
}

// pageRequest resolves public options into the internal page request. The
// default page size is applied here, exactly once, at the public boundary.
func (c *Client) pageRequest(index string, o PageOptions) query.PageRequest {
	size := o.Size
	if size <= 0 {
		size = c.pageSize
	}
	req := query.PageRequest{
		Index: index,
		Scope: o.Scope,
		Term:  o.Term,
		Size:  size,
	}
	if o.Before != nil {
		cur := o.Before.inner
		req.Before = &cur
	}
	if o.After != nil {
		cur := o.After.inner
		req.After = &cur
	}
	return req
}
