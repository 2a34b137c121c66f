/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/tagstore/datastore"
	"github.com/suparena/tagstore/errors"
	"github.com/suparena/tagstore/storagemodels"
)

// Store persists the pairs of a snapshot as association records under one namespace.
type Store struct {
	ds        datastore.DataStore[storagemodels.Association]
	namespace string
	params    *storagemodels.QueryParams
}

// NewStore returns a Store writing to ds. params must select the namespace's records.
func NewStore(ds datastore.DataStore[storagemodels.Association], namespace string, params *storagemodels.QueryParams) *Store {
	return &Store{ds: ds, namespace: namespace, params: params}
}

// Load returns every persisted pair of the namespace.
func (s *Store) Load(ctx context.Context) ([]storagemodels.Association, error) {
	records, err := s.ds.Query(ctx, s.params)
	if err != nil {
		return nil, fmt.Errorf("failed to load associations for %q: %w", s.namespace, err)
	}

	out := make([]storagemodels.Association, 0, len(records))
	for _, r := range records {
		if r.Namespace == s.namespace {
			out = append(out, r)
		}
	}
	return out, nil
}

// Save makes the namespace hold exactly the pairs of snap. Records already
// present keep their CreatedAt; records absent from snap are deleted.
func (s *Store) Save(ctx context.Context, snap *Snapshot) error {
	existing, err := s.Load(ctx)
	if err != nil {
		return err
	}
	stale := make(map[string]storagemodels.Association, len(existing))
	for _, r := range existing {
		stale[r.Key()] = r
	}

	now := strfmt.DateTime(time.Now().UTC())
	for _, a := range snap.Associations {
		if _, ok := stale[a.Key()]; ok {
			delete(stale, a.Key())
			continue
		}
		record := storagemodels.Association{
			Namespace: s.namespace,
			EntityID:  a.EntityID,
			LabelName: a.LabelName,
			CreatedAt: a.CreatedAt,
		}
		if record.CreatedAt == nil {
			record.CreatedAt = &now
		}
		if err := s.ds.Put(ctx, record); err != nil {
			return fmt.Errorf("failed to save %s/%s: %w", a.EntityID, a.LabelName, err)
		}
	}

	for _, r := range stale {
		if err := s.ds.Delete(ctx, r); err != nil && !errors.IsNotFound(err) {
			return fmt.Errorf("failed to delete %s/%s: %w", r.EntityID, r.LabelName, err)
		}
	}
	return nil
}
