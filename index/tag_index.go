/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package index

import (
	"sort"
	"sync"

	"github.com/suparena/tagstore/registry"
	"github.com/suparena/tagstore/storagemodels"
)

type set map[string]struct{}

// Option configures a TagIndex.
type Option func(*TagIndex)

// WithPruneEmpty removes a key once its last association is detached.
func WithPruneEmpty() Option {
	return func(idx *TagIndex) {
		idx.pruneEmpty = true
	}
}

// Stats reports how many keys each side of the index holds.
type Stats struct {
	Entities     int // keys in the entity → labels map, including empty sets
	Labels       int // keys in the label → entities map, including empty sets
	Associations int
}

// TagIndex is a bidirectional entity⇄label index.
type TagIndex struct {
	labels     *registry.LabelRegistry
	pruneEmpty bool

	// mu guards forward and reverse together.
	mu      sync.RWMutex
	forward map[string]set // entity id → label names
	reverse map[string]set // label name → entity ids
	pairs   int
}

// New creates an empty index resolving label names through labels.
func New(labels *registry.LabelRegistry, opts ...Option) *TagIndex {
	idx := &TagIndex{
		labels:  labels,
		forward: make(map[string]set),
		reverse: make(map[string]set),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Attach associates entityID with labelName. Attaching an existing pair is a no-op.
func (idx *TagIndex) Attach(entityID, labelName string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	names, ok := idx.forward[entityID]
	if !ok {
		names = make(set)
		idx.forward[entityID] = names
	}
	entities, ok := idx.reverse[labelName]
	if !ok {
		entities = make(set)
		idx.reverse[labelName] = entities
	}

	if _, exists := names[labelName]; exists {
		return
	}
	names[labelName] = struct{}{}
	entities[entityID] = struct{}{}
	idx.pairs++
}

// Detach removes the pair if present. Detaching a missing pair is a no-op.
func (idx *TagIndex) Detach(entityID, labelName string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	names, ok := idx.forward[entityID]
	if !ok {
		return
	}
	if _, exists := names[labelName]; !exists {
		return
	}

	delete(names, labelName)
	entities := idx.reverse[labelName]
	delete(entities, entityID)
	idx.pairs--

	if idx.pruneEmpty {
		if len(names) == 0 {
			delete(idx.forward, entityID)
		}
		if len(entities) == 0 {
			delete(idx.reverse, labelName)
		}
	}
}

// LabelsOf returns the canonical labels attached to entityID, sorted by name.
// An unknown entity yields an empty slice.
func (idx *TagIndex) LabelsOf(entityID string) []*registry.Label {
	idx.mu.RLock()
	names := sortedKeys(idx.forward[entityID])
	idx.mu.RUnlock()

	out := make([]*registry.Label, 0, len(names))
	for _, name := range names {
		out = append(out, idx.labels.GetOrCreate(name))
	}
	return out
}

// EntitiesOf returns the entity ids carrying labelName, sorted.
// An unknown label yields an empty slice.
func (idx *TagIndex) EntitiesOf(labelName string) []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return sortedKeys(idx.reverse[labelName])
}

// Has reports whether the pair is attached.
func (idx *TagIndex) Has(entityID, labelName string) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	_, ok := idx.forward[entityID][labelName]
	return ok
}

// Associations returns every attached pair, ordered by entity then label.
func (idx *TagIndex) Associations() []storagemodels.Association {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]storagemodels.Association, 0, idx.pairs)
	for _, entityID := range sortedKeys(idx.forward) {
		for _, labelName := range sortedKeys(idx.forward[entityID]) {
			out = append(out, storagemodels.Association{EntityID: entityID, LabelName: labelName})
		}
	}
	return out
}

// Stats returns the current key and pair counts.
func (idx *TagIndex) Stats() Stats {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return Stats{
		Entities:     len(idx.forward),
		Labels:       len(idx.reverse),
		Associations: idx.pairs,
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
