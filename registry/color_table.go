/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/suparena/tagstore/errors"
)

// DefaultColor is the token given to any label name a ColorTable does not list.
const DefaultColor Color = "bg-gray-500"

// defaultCategories is the built-in category palette.
var defaultCategories = map[string]Color{
	"Urgent":    "bg-red-500",
	"Important": "bg-orange-500",
	"Work":      "bg-blue-500",
	"Personal":  "bg-green-500",
	"Review":    "bg-yellow-500",
	"Archive":   "bg-purple-500",
}

// ColorTable is a closed mapping from category name to color token with one
// fallback token. It is immutable after construction.
type ColorTable struct {
	colors map[string]Color
	def    Color
}

// ColorEntry is one category of a ColorTable.
type ColorEntry struct {
	Name  string
	Color Color
}

// colorTableFile is the YAML form of a ColorTable.
type colorTableFile struct {
	Default string            `yaml:"default"`
	Colors  map[string]string `yaml:"colors"`
}

// NewColorTable builds a table from a copy of colors. The default token must
// be non-empty and must not be used by any category.
func NewColorTable(colors map[string]Color, def Color) (*ColorTable, error) {
	if def == "" {
		return nil, errors.NewValidationError("default", "default color must not be empty")
	}

	copied := make(map[string]Color, len(colors))
	for name, color := range colors {
		if name == "" {
			return nil, errors.NewValidationError("colors", "category name must not be empty")
		}
		if color == "" {
			return nil, errors.NewValidationError("colors", fmt.Sprintf("category %q has an empty color", name))
		}
		if color == def {
			return nil, errors.NewValidationError("colors", fmt.Sprintf("category %q uses the default color %q", name, def))
		}
		copied[name] = color
	}

	return &ColorTable{colors: copied, def: def}, nil
}

// DefaultColorTable returns the built-in palette.
func DefaultColorTable() *ColorTable {
	t, err := NewColorTable(defaultCategories, DefaultColor)
	if err != nil {
		panic(fmt.Sprintf("color table: built-in palette is invalid: %v", err))
	}
	return t
}

// LoadColorTable reads a table from YAML. A missing default falls back to DefaultColor.
func LoadColorTable(r io.Reader) (*ColorTable, error) {
	var file colorTableFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode color table: %w", err)
	}
	return file.table()
}

func (f colorTableFile) table() (*ColorTable, error) {
	def := Color(f.Default)
	if def == "" {
		def = DefaultColor
	}
	colors := make(map[string]Color, len(f.Colors))
	for name, color := range f.Colors {
		colors[name] = Color(color)
	}
	return NewColorTable(colors, def)
}

// Lookup resolves name to its category color, or the default token.
func (t *ColorTable) Lookup(name string) Color {
	if color, ok := t.colors[name]; ok {
		return color
	}
	return t.def
}

// Default returns the fallback token.
func (t *ColorTable) Default() Color {
	return t.def
}

// Entries returns the categories sorted by name.
func (t *ColorTable) Entries() []ColorEntry {
	entries := make([]ColorEntry, 0, len(t.colors))
	for name, color := range t.colors {
		entries = append(entries, ColorEntry{Name: name, Color: color})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// MarshalYAML implements yaml.Marshaler.
func (t *ColorTable) MarshalYAML() (interface{}, error) {
	file := colorTableFile{
		Default: string(t.def),
		Colors:  make(map[string]string, len(t.colors)),
	}
	for name, color := range t.colors {
		file.Colors[name] = string(color)
	}
	return file, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *ColorTable) UnmarshalYAML(value *yaml.Node) error {
	var file colorTableFile
	if err := value.Decode(&file); err != nil {
		return err
	}
	parsed, err := file.table()
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}
