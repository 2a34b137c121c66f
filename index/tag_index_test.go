/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package index

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/suparena/tagstore/registry"
	"github.com/suparena/tagstore/storagemodels"
)

func newTestIndex(opts ...Option) (*TagIndex, *registry.LabelRegistry) {
	labels := registry.NewLabelRegistry(registry.DefaultColorTable())
	return New(labels, opts...), labels
}

func labelNames(labels []*registry.Label) []string {
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		names = append(names, l.Name())
	}
	return names
}

func TestUrgentScenario(t *testing.T) {
	idx, labels := newTestIndex()

	idx.Attach("file1", "Urgent")
	idx.Attach("file2", "Urgent")

	assert.Equal(t, []string{"file1", "file2"}, idx.EntitiesOf("Urgent"))

	got := idx.LabelsOf("file1")
	require.Len(t, got, 1)
	assert.Equal(t, "Urgent", got[0].Name())
	assert.Equal(t, registry.Color("bg-red-500"), got[0].Color())
	assert.Same(t, labels.GetOrCreate("Urgent"), got[0])

	idx.Detach("file1", "Urgent")

	assert.Equal(t, []string{"file2"}, idx.EntitiesOf("Urgent"))
	assert.Empty(t, idx.LabelsOf("file1"))
}

func TestUnknownKeysAreEmpty(t *testing.T) {
	idx, _ := newTestIndex()

	labels := idx.LabelsOf("nope")
	assert.NotNil(t, labels)
	assert.Empty(t, labels)

	entities := idx.EntitiesOf("nope")
	assert.NotNil(t, entities)
	assert.Empty(t, entities)

	assert.Equal(t, Stats{}, idx.Stats(), "queries must not create keys")
}

func TestAttach_Idempotent(t *testing.T) {
	idx, _ := newTestIndex()

	idx.Attach("file1", "Urgent")
	idx.Attach("file1", "Urgent")

	assert.Equal(t, []string{"file1"}, idx.EntitiesOf("Urgent"))
	assert.Len(t, idx.LabelsOf("file1"), 1)
	assert.Equal(t, Stats{Entities: 1, Labels: 1, Associations: 1}, idx.Stats())
}

func TestDetach_MissingPairIsNoop(t *testing.T) {
	idx, _ := newTestIndex()
	idx.Attach("file1", "Work")
	before := idx.Associations()

	assert.NotPanics(t, func() {
		idx.Detach("file1", "Urgent")
		idx.Detach("file9", "Work")
		idx.Detach("file9", "Nothing")
	})

	assert.Equal(t, before, idx.Associations())
	assert.Equal(t, Stats{Entities: 1, Labels: 1, Associations: 1}, idx.Stats())
}

func TestLabelsOf_SortedAndColored(t *testing.T) {
	idx, _ := newTestIndex()
	idx.Attach("file1", "Work")
	idx.Attach("file1", "Mystery")
	idx.Attach("file1", "Archive")

	got := idx.LabelsOf("file1")
	assert.Equal(t, []string{"Archive", "Mystery", "Work"}, labelNames(got))
	assert.Equal(t, registry.DefaultColor, got[1].Color())
}

func TestLabelsOf_InternsThroughRegistry(t *testing.T) {
	idx, labels := newTestIndex()
	idx.Attach("file1", "Fresh")

	_, ok := labels.Lookup("Fresh")
	assert.False(t, ok, "attach does not touch the registry")

	got := idx.LabelsOf("file1")
	found, ok := labels.Lookup("Fresh")
	require.True(t, ok)
	assert.Same(t, found, got[0])
}

func TestHas(t *testing.T) {
	idx, _ := newTestIndex()
	idx.Attach("file1", "Urgent")

	assert.True(t, idx.Has("file1", "Urgent"))
	assert.False(t, idx.Has("file1", "Work"))
	assert.False(t, idx.Has("file2", "Urgent"))
}

func TestAssociations_Ordered(t *testing.T) {
	idx, _ := newTestIndex()
	idx.Attach("b", "Work")
	idx.Attach("a", "Work")
	idx.Attach("a", "Urgent")

	assert.Equal(t, []storagemodels.Association{
		{EntityID: "a", LabelName: "Urgent"},
		{EntityID: "a", LabelName: "Work"},
		{EntityID: "b", LabelName: "Work"},
	}, idx.Associations())
}

func TestEmptySetPolicy_RetainByDefault(t *testing.T) {
	idx, _ := newTestIndex()
	idx.Attach("file1", "Urgent")
	idx.Detach("file1", "Urgent")

	assert.Equal(t, Stats{Entities: 1, Labels: 1, Associations: 0}, idx.Stats())
	assert.Empty(t, idx.LabelsOf("file1"))
	assert.Empty(t, idx.EntitiesOf("Urgent"))

	// Re-attaching reuses the retained sets.
	idx.Attach("file1", "Urgent")
	assert.Equal(t, Stats{Entities: 1, Labels: 1, Associations: 1}, idx.Stats())
}

func TestEmptySetPolicy_Prune(t *testing.T) {
	idx, _ := newTestIndex(WithPruneEmpty())
	idx.Attach("file1", "Urgent")
	idx.Attach("file2", "Urgent")
	idx.Attach("file1", "Work")

	idx.Detach("file1", "Urgent")
	assert.Equal(t, Stats{Entities: 2, Labels: 2, Associations: 2}, idx.Stats())

	idx.Detach("file1", "Work")
	assert.Equal(t, Stats{Entities: 1, Labels: 1, Associations: 1}, idx.Stats())

	idx.Detach("file2", "Urgent")
	assert.Equal(t, Stats{}, idx.Stats())
	assert.Empty(t, idx.EntitiesOf("Urgent"))
}

func TestConcurrentAttachDetach(t *testing.T) {
	idx, _ := newTestIndex()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				entity := fmt.Sprintf("file%d", i%10)
				label := fmt.Sprintf("L%d", (i+w)%5)
				idx.Attach(entity, label)
				if i%3 == 0 {
					idx.Detach(entity, label)
				}
				_ = idx.LabelsOf(entity)
				_ = idx.EntitiesOf(label)
			}
		}(w)
	}
	wg.Wait()

	assertSymmetric(t, idx)
}

func assertSymmetric(t *testing.T, idx *TagIndex) {
	t.Helper()
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	count := 0
	for entityID, names := range idx.forward {
		for name := range names {
			_, ok := idx.reverse[name][entityID]
			assert.True(t, ok, "forward has %s→%s but reverse does not", entityID, name)
			count++
		}
	}
	for name, entities := range idx.reverse {
		for entityID := range entities {
			_, ok := idx.forward[entityID][name]
			assert.True(t, ok, "reverse has %s→%s but forward does not", name, entityID)
		}
	}
	assert.Equal(t, count, idx.pairs)
}

// TestIndexMatchesModel drives random attach/detach sequences and checks the
// index against a plain set of pairs after every step.
func TestIndexMatchesModel(t *testing.T) {
	entities := []string{"file1", "file2", "file3", "dir/a.txt"}
	names := []string{"Urgent", "Work", "Mystery", "x"}

	rapid.Check(t, func(rt *rapid.T) {
		var opts []Option
		if rapid.Bool().Draw(rt, "prune") {
			opts = append(opts, WithPruneEmpty())
		}
		idx, _ := newTestIndex(opts...)
		model := make(map[storagemodels.Association]bool)

		steps := rapid.IntRange(0, 60).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			pair := storagemodels.Association{
				EntityID:  rapid.SampledFrom(entities).Draw(rt, "entity"),
				LabelName: rapid.SampledFrom(names).Draw(rt, "label"),
			}
			if rapid.Bool().Draw(rt, "attach") {
				idx.Attach(pair.EntityID, pair.LabelName)
				model[pair] = true
			} else {
				idx.Detach(pair.EntityID, pair.LabelName)
				delete(model, pair)
			}
		}

		for _, e := range entities {
			for _, l := range names {
				want := model[storagemodels.Association{EntityID: e, LabelName: l}]
				inLabels := contains(labelNames(idx.LabelsOf(e)), l)
				inEntities := contains(idx.EntitiesOf(l), e)
				if inLabels != want || inEntities != want {
					rt.Fatalf("pair (%s, %s): model=%v labelsOf=%v entitiesOf=%v", e, l, want, inLabels, inEntities)
				}
			}
		}
		if got := idx.Stats().Associations; got != len(model) {
			rt.Fatalf("associations = %d, want %d", got, len(model))
		}
	})
}

// TestAttachDetachRoundTrip checks that attaching then detaching a new pair
// leaves every query answering exactly as before.
func TestAttachDetachRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		idx, _ := newTestIndex()
		seed := rapid.SliceOfN(rapid.StringMatching(`[a-c][0-2]`), 0, 12).Draw(rt, "seed")
		for _, s := range seed {
			idx.Attach("file"+s[1:], "L"+s[:1])
		}

		entity := rapid.StringMatching(`file[0-3]`).Draw(rt, "entity")
		label := rapid.StringMatching(`L[a-d]`).Draw(rt, "label")
		if idx.Has(entity, label) {
			rt.Skip("pair already attached")
		}

		before := idx.Associations()
		idx.Attach(entity, label)
		idx.Detach(entity, label)

		assert.Equal(rt, before, idx.Associations())
		assert.NotContains(rt, idx.EntitiesOf(label), entity)
		assert.NotContains(rt, labelNames(idx.LabelsOf(entity)), label)
	})
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
