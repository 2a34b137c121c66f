/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/suparena/tagstore/errors"
)

func TestDefaultColorTable(t *testing.T) {
	table := DefaultColorTable()

	assert.Equal(t, Color("bg-red-500"), table.Lookup("Urgent"))
	assert.Equal(t, DefaultColor, table.Lookup("Mystery"))
	assert.Equal(t, DefaultColor, table.Default())
	assert.Len(t, table.Entries(), 6)
}

func TestNewColorTable_CopiesInput(t *testing.T) {
	colors := map[string]Color{"Urgent": "bg-red-500"}
	table, err := NewColorTable(colors, DefaultColor)
	require.NoError(t, err)

	colors["Urgent"] = "bg-black"
	colors["Later"] = "bg-white"

	assert.Equal(t, Color("bg-red-500"), table.Lookup("Urgent"))
	assert.Equal(t, DefaultColor, table.Lookup("Later"))
}

func TestNewColorTable_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		colors map[string]Color
		def    Color
	}{
		{name: "empty default", colors: nil, def: ""},
		{name: "empty category name", colors: map[string]Color{"": "bg-red-500"}, def: DefaultColor},
		{name: "empty category color", colors: map[string]Color{"Urgent": ""}, def: DefaultColor},
		{name: "category reuses default", colors: map[string]Color{"Urgent": DefaultColor}, def: DefaultColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewColorTable(tt.colors, tt.def)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestLoadColorTable(t *testing.T) {
	input := `
default: bg-slate-400
colors:
  Urgent: bg-red-600
  Work: bg-blue-600
`
	table, err := LoadColorTable(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, Color("bg-slate-400"), table.Default())
	assert.Equal(t, Color("bg-red-600"), table.Lookup("Urgent"))
	assert.Equal(t, Color("bg-slate-400"), table.Lookup("Personal"))
	assert.Equal(t, []ColorEntry{
		{Name: "Urgent", Color: "bg-red-600"},
		{Name: "Work", Color: "bg-blue-600"},
	}, table.Entries())
}

func TestLoadColorTable_MissingDefault(t *testing.T) {
	table, err := LoadColorTable(strings.NewReader("colors:\n  Urgent: bg-red-500\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultColor, table.Default())
}

func TestLoadColorTable_Empty(t *testing.T) {
	table, err := LoadColorTable(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, table.Entries())
	assert.Equal(t, DefaultColor, table.Lookup("Urgent"))
}

func TestLoadColorTable_Malformed(t *testing.T) {
	_, err := LoadColorTable(strings.NewReader("colors: [not, a, map]"))
	require.Error(t, err)
}

func TestColorTable_YAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, yaml.NewEncoder(&buf).Encode(DefaultColorTable()))

	var decoded ColorTable
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, DefaultColorTable().Entries(), decoded.Entries())
	assert.Equal(t, DefaultColor, decoded.Default())
}
