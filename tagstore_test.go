/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tagstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/tagstore"
	"github.com/suparena/tagstore/index"
	"github.com/suparena/tagstore/registry"
)

func TestService_Scenario(t *testing.T) {
	svc := tagstore.NewService()

	svc.Attach("file1", "Urgent")
	svc.Attach("file2", "Urgent")
	assert.Equal(t, []string{"file1", "file2"}, svc.EntitiesOf("Urgent"))

	labels := svc.LabelsOf("file1")
	require.Len(t, labels, 1)
	assert.Same(t, svc.GetOrCreate("Urgent"), labels[0])
	assert.Equal(t, registry.Color("bg-red-500"), labels[0].Color())

	svc.Detach("file1", "Urgent")
	assert.Equal(t, []string{"file2"}, svc.EntitiesOf("Urgent"))
	assert.Empty(t, svc.LabelsOf("file1"))
}

func TestService_FallbackColor(t *testing.T) {
	svc := tagstore.NewService()
	assert.Equal(t, registry.DefaultColor, svc.GetOrCreate("Mystery").Color())
}

func TestService_WithColorTable(t *testing.T) {
	table, err := registry.NewColorTable(map[string]registry.Color{"Urgent": "bg-rose-700"}, "bg-zinc-300")
	require.NoError(t, err)

	svc := tagstore.NewService(tagstore.WithColorTable(table))
	assert.Equal(t, registry.Color("bg-rose-700"), svc.GetOrCreate("Urgent").Color())
	assert.Equal(t, registry.Color("bg-zinc-300"), svc.GetOrCreate("Work").Color())
	assert.Same(t, table, svc.Labels().ColorTable())
}

func TestService_WithPruneEmpty(t *testing.T) {
	retain := tagstore.NewService()
	prune := tagstore.NewService(tagstore.WithPruneEmpty())

	for _, svc := range []*tagstore.Service{retain, prune} {
		svc.Attach("file1", "Urgent")
		svc.Detach("file1", "Urgent")
	}

	assert.Equal(t, index.Stats{Entities: 1, Labels: 1}, retain.Index().Stats())
	assert.Equal(t, index.Stats{}, prune.Index().Stats())
}

func TestService_InstancesAreIndependent(t *testing.T) {
	a := tagstore.NewService()
	b := tagstore.NewService()

	a.Attach("file1", "Urgent")

	assert.Empty(t, b.EntitiesOf("Urgent"))
	assert.NotSame(t, a.GetOrCreate("Urgent"), b.GetOrCreate("Urgent"))
}

func TestGetVersionInfo(t *testing.T) {
	info := tagstore.GetVersionInfo()
	assert.Equal(t, tagstore.Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}
