/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-openapi/strfmt"
	"gopkg.in/yaml.v3"

	"github.com/suparena/tagstore"
	"github.com/suparena/tagstore/errors"
	"github.com/suparena/tagstore/registry"
	"github.com/suparena/tagstore/storagemodels"
	"github.com/suparena/tagstore/validate"
)

// CurrentVersion is the snapshot format version written by Capture.
const CurrentVersion = 1

// Snapshot is the persisted form of a Service.
type Snapshot struct {
	Version      int                         `yaml:"version"`
	TakenAt      strfmt.DateTime             `yaml:"takenAt"`
	Palette      *registry.ColorTable        `yaml:"palette,omitempty"`
	Labels       []string                    `yaml:"labels,omitempty"`
	Associations []storagemodels.Association `yaml:"associations"`
}

// Capture records the current state of svc. Labels lists every name the
// service knows: interned ones and those only present in attached pairs.
func Capture(svc *tagstore.Service) *Snapshot {
	pairs := svc.Index().Associations()

	seen := make(map[string]struct{})
	for _, l := range svc.Labels().Labels() {
		seen[l.Name()] = struct{}{}
	}
	for _, a := range pairs {
		seen[a.LabelName] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Snapshot{
		Version:      CurrentVersion,
		TakenAt:      strfmt.DateTime(time.Now().UTC()),
		Palette:      svc.Labels().ColorTable(),
		Labels:       names,
		Associations: pairs,
	}
}

// Restore builds a new Service from snap. The snapshot's palette is applied
// first, so opts may override it. Nothing is attached unless every key is valid.
func Restore(snap *Snapshot, opts ...tagstore.Option) (*tagstore.Service, error) {
	if snap.Version > CurrentVersion {
		return nil, errors.NewValidationError("version", fmt.Sprintf("unsupported snapshot version %d", snap.Version))
	}
	for _, name := range snap.Labels {
		if err := validate.LabelName(name); err != nil {
			return nil, fmt.Errorf("restore snapshot: %w", err)
		}
	}
	for _, a := range snap.Associations {
		if err := validate.Pair(a.EntityID, a.LabelName); err != nil {
			return nil, fmt.Errorf("restore snapshot: %w", err)
		}
	}

	if snap.Palette != nil {
		opts = append([]tagstore.Option{tagstore.WithColorTable(snap.Palette)}, opts...)
	}
	svc := tagstore.NewService(opts...)
	for _, name := range snap.Labels {
		svc.GetOrCreate(name)
	}
	for _, a := range snap.Associations {
		svc.GetOrCreate(a.LabelName)
		svc.Attach(a.EntityID, a.LabelName)
	}
	return svc, nil
}

// WriteYAML encodes snap to w.
func WriteYAML(w io.Writer, snap *Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return enc.Close()
}

// ReadYAML decodes a snapshot from r.
func ReadYAML(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
		if err == io.EOF {
			return nil, errors.NewValidationError("snapshot", "empty document")
		}
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}

// SaveFile writes snap to path, replacing the file atomically.
func SaveFile(path string, snap *Snapshot) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteYAML(tmp, snap); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// LoadFile reads a snapshot from path. A missing file is a NotFoundError.
func LoadFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("snapshot", path)
		}
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()
	return ReadYAML(f)
}
