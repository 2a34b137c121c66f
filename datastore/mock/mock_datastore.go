/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory DataStore for tests and local runs.
package mock

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/tagstore/errors"
	"github.com/suparena/tagstore/storagemodels"
)

// DataStore is an in-memory implementation of datastore.DataStore[T].
type DataStore[T any] struct {
	mu          sync.RWMutex
	data        map[string]T
	getKeyFunc  func(record T) string
	queryFunc   func(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)
	putError    error
	deleteError error
	queryError  error
}

// New creates a new mock DataStore
func New[T any]() *DataStore[T] {
	return &DataStore[T]{
		data: make(map[string]T),
	}
}

// WithGetKeyFunc sets the function that derives a record's key
func (m *DataStore[T]) WithGetKeyFunc(f func(T) string) *DataStore[T] {
	m.getKeyFunc = f
	return m
}

// WithQueryFunc replaces the default Query behavior
func (m *DataStore[T]) WithQueryFunc(f func(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)) *DataStore[T] {
	m.queryFunc = f
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.putError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore[T]) WithDeleteError(err error) *DataStore[T] {
	m.deleteError = err
	return m
}

// WithQueryError makes Query operations return an error
func (m *DataStore[T]) WithQueryError(err error) *DataStore[T] {
	m.queryError = err
	return m
}

// GetOne retrieves a record by key. keyInput is either the key string or a T.
func (m *DataStore[T]) GetOne(ctx context.Context, keyInput any) (*T, error) {
	key, err := m.resolveKey(keyInput)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if record, exists := m.data[key]; exists {
		return &record, nil
	}
	var zero T
	return nil, errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
}

// Put stores a record, replacing any record with the same key
func (m *DataStore[T]) Put(ctx context.Context, record T) error {
	if m.putError != nil {
		return m.putError
	}

	key := m.extractKey(record)
	if key == "" {
		return errors.NewValidationError("key", "unable to extract key from record")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = record
	return nil
}

// Delete removes a record by key
func (m *DataStore[T]) Delete(ctx context.Context, keyInput any) error {
	if m.deleteError != nil {
		return m.deleteError
	}
	key, err := m.resolveKey(keyInput)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists {
		var zero T
		return errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}
	delete(m.data, key)
	return nil
}

// Query returns every stored record ordered by key unless a query func is set
func (m *DataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	if m.queryError != nil {
		return nil, m.queryError
	}
	if m.queryFunc != nil {
		return m.queryFunc(ctx, params)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	results := make([]T, 0, len(keys))
	for _, k := range keys {
		results = append(results, m.data[k])
	}
	return results, nil
}

// Count returns the number of stored records
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all data
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]T)
}

func (m *DataStore[T]) resolveKey(keyInput any) (string, error) {
	switch k := keyInput.(type) {
	case string:
		return k, nil
	case T:
		return m.extractKey(k), nil
	case *T:
		if k != nil {
			return m.extractKey(*k), nil
		}
	}
	return "", errors.NewValidationError("keyInput", fmt.Sprintf("unsupported key type %T", keyInput))
}

// extractKey derives the storage key of a record
func (m *DataStore[T]) extractKey(record T) string {
	if m.getKeyFunc != nil {
		return m.getKeyFunc(record)
	}
	return fmt.Sprintf("key_%v", record)
}
