/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/tagstore/storagemodels"
)

// DataStore persists records of type T.
type DataStore[T any] interface {
	// GetOne returns the record identified by keyInput, or a NotFoundError.
	GetOne(ctx context.Context, keyInput any) (*T, error)

	Put(ctx context.Context, record T) error

	// Delete removes the record identified by keyInput, or returns a NotFoundError.
	Delete(ctx context.Context, keyInput any) error

	// Query returns every record matching params, across all pages.
	Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)
}
