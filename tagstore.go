/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tagstore

import (
	"github.com/suparena/tagstore/index"
	"github.com/suparena/tagstore/registry"
)

// Service is the composition root for the tagging core: one label registry
// and one index sharing it.
type Service struct {
	labels *registry.LabelRegistry
	index  *index.TagIndex
}

type serviceOptions struct {
	table     *registry.ColorTable
	indexOpts []index.Option
}

// Option configures a Service.
type Option func(*serviceOptions)

// WithColorTable colors new labels from table instead of the built-in palette.
func WithColorTable(table *registry.ColorTable) Option {
	return func(o *serviceOptions) {
		o.table = table
	}
}

// WithPruneEmpty makes the index drop keys whose last association is detached.
func WithPruneEmpty() Option {
	return func(o *serviceOptions) {
		o.indexOpts = append(o.indexOpts, index.WithPruneEmpty())
	}
}

// NewService creates an empty Service.
func NewService(opts ...Option) *Service {
	var o serviceOptions
	for _, opt := range opts {
		opt(&o)
	}

	labels := registry.NewLabelRegistry(o.table)
	return &Service{
		labels: labels,
		index:  index.New(labels, o.indexOpts...),
	}
}

// GetOrCreate returns the shared label for name.
func (s *Service) GetOrCreate(name string) *registry.Label {
	return s.labels.GetOrCreate(name)
}

// Attach tags entityID with labelName.
func (s *Service) Attach(entityID, labelName string) {
	s.index.Attach(entityID, labelName)
}

// Detach removes the tag if present.
func (s *Service) Detach(entityID, labelName string) {
	s.index.Detach(entityID, labelName)
}

// LabelsOf returns the labels on entityID, sorted by name.
func (s *Service) LabelsOf(entityID string) []*registry.Label {
	return s.index.LabelsOf(entityID)
}

// EntitiesOf returns the entities tagged with labelName, sorted.
func (s *Service) EntitiesOf(labelName string) []string {
	return s.index.EntitiesOf(labelName)
}

// Labels exposes the label registry.
func (s *Service) Labels() *registry.LabelRegistry {
	return s.labels
}

// Index exposes the association index.
func (s *Service) Index() *index.TagIndex {
	return s.index
}
