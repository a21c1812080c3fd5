// Package query is the document store the market repositories share. Every
// call is timed, slow calls are logged and writes issued inside
// RunWithTransaction commit or roll back together.
package query

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrCollScan is returned when index checking is on and a query would scan a whole collection
	ErrCollScan = errors.New("COLLSCAN is not allowed")
)

// Index is a single index EnsureIndex creates
type Index struct {
	Keys   bson.D
	Unique bool
}

type Mongo interface {
	// Insert returns ErrDuplicateKey when a unique index is violated
	Insert(c ctx.Ctx, table domain.Table, doc interface{}) error
	// FindOne returns ErrNotFound when nothing matches
	FindOne(c ctx.Ctx, table domain.Table, filter, result interface{}) error
	// Upsert replaces the document matching filter or inserts doc
	Upsert(c ctx.Ctx, table domain.Table, filter, doc interface{}) error
	// Search orders by sort, "-field" for descending, "" for natural order
	Search(c ctx.Ctx, table domain.Table, offset, limit int, sort string, filter, results interface{}) error
	// SearchNSorts orders by every field of sorts in turn
	SearchNSorts(c ctx.Ctx, table domain.Table, offset, limit int, sorts []string, filter, results interface{}) error
	// Remove deletes one document, ErrNotFound when nothing matches
	Remove(c ctx.Ctx, table domain.Table, filter interface{}) error
	EnsureIndex(c ctx.Ctx, table domain.Table, indices ...Index) error
	// RunWithTransaction hands run a ctx bound to a session. Calls made with
	// that ctx are committed when run returns nil and aborted otherwise.
	RunWithTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error
}
