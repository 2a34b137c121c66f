/*
Package datastore defines the persistence interface tagstore's snapshot layer
writes through.

The main interface is DataStore[T], which provides generic CRUD operations for
any record type T:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, keyInput any) (*T, error)
	    Put(ctx context.Context, record T) error
	    Delete(ctx context.Context, keyInput any) error
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)
	}

keyInput is a value whose fields fill the record type's key templates, usually
a T with only its key fields set.

Implementations:
  - ddb: DynamoDB implementation using single-table key templates
  - mock: In-memory implementation for testing and local use
*/
package datastore
