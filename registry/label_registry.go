/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"sort"
	"sync"
)

// LabelRegistry interns labels: one *Label per distinct name, for the
// registry's lifetime. It is append-only.
type LabelRegistry struct {
	mu     sync.RWMutex
	table  *ColorTable
	labels map[string]*Label
}

// NewLabelRegistry creates a registry resolving colors from table.
// A nil table means DefaultColorTable.
func NewLabelRegistry(table *ColorTable) *LabelRegistry {
	if table == nil {
		table = DefaultColorTable()
	}
	return &LabelRegistry{
		table:  table,
		labels: make(map[string]*Label),
	}
}

// GetOrCreate returns the label for name, creating it on first reference.
// The name is not validated; callers pass a non-empty key.
func (r *LabelRegistry) GetOrCreate(name string) *Label {
	r.mu.RLock()
	l, ok := r.labels[name]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another caller may have created it between the two locks.
	if l, ok := r.labels[name]; ok {
		return l
	}
	l = &Label{name: name, color: r.table.Lookup(name)}
	r.labels[name] = l
	return l
}

// Lookup returns the label for name without creating it.
func (r *LabelRegistry) Lookup(name string) (*Label, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.labels[name]
	return l, ok
}

// ColorTable returns the table new labels are colored from.
func (r *LabelRegistry) ColorTable() *ColorTable {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.table
}

// ReplaceColorTable swaps the table used for labels created from now on.
// Existing labels keep the color they were created with.
func (r *LabelRegistry) ReplaceColorTable(table *ColorTable) {
	if table == nil {
		table = DefaultColorTable()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table = table
}

// Len returns the number of interned labels.
func (r *LabelRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.labels)
}

// Labels returns every interned label sorted by name.
func (r *LabelRegistry) Labels() []*Label {
	r.mu.RLock()
	out := make([]*Label, 0, len(r.labels))
	for _, l := range r.labels {
		out = append(out, l)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
