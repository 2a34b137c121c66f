/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/suparena/tagstore/snapshot"
)

func newPushCmd(a *app) *cobra.Command {
	var allowEmpty bool
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Replace the remote namespace with the snapshot's pairs",
		Long:  `push replaces the remote namespace with the snapshot's pairs. The snapshot file must exist; pushing a snapshot without pairs requires --allow-empty.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			// A missing file must fail here: an empty push clears the namespace.
			loaded, err := snapshot.LoadFile(a.snapshotPath)
			if err != nil {
				return fmt.Errorf("push: %w", err)
			}
			svc, err := snapshot.Restore(loaded)
			if err != nil {
				return err
			}
			snap := snapshot.Capture(svc)
			if len(snap.Associations) == 0 && !allowEmpty {
				return fmt.Errorf("push: %s has no associations; use --allow-empty to clear %s", a.snapshotPath, cfg.Namespace)
			}

			r, err := a.remote(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err := snapshot.NewStore(r.ds, cfg.Namespace, r.namespace).Save(cmd.Context(), snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pushed %d associations to %s\n", len(snap.Associations), cfg.Namespace)
			return nil
		},
	}
	cmd.Flags().BoolVar(&allowEmpty, "allow-empty", false, "push even when the snapshot has no associations")
	return cmd
}

func newPullCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Replace the snapshot's pairs with the remote namespace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			local, err := a.open()
			if err != nil {
				return err
			}
			r, err := a.remote(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			pairs, err := snapshot.NewStore(r.ds, cfg.Namespace, r.namespace).Load(cmd.Context())
			if err != nil {
				return err
			}

			// Keep the local palette; pairs and their labels come from the remote.
			pulled := &snapshot.Snapshot{
				Version:      snapshot.CurrentVersion,
				Palette:      local.Labels().ColorTable(),
				Associations: pairs,
			}
			svc, err := snapshot.Restore(pulled)
			if err != nil {
				return err
			}
			if err := a.save(svc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pulled %d associations from %s\n", len(pairs), cfg.Namespace)
			return nil
		},
	}
}

// remoteEntities lists the entities carrying labelName in the remote namespace.
func (a *app) remoteEntities(ctx context.Context, labelName string) ([]string, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	r, err := a.remote(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pairs, err := snapshot.NewStore(r.ds, cfg.Namespace, r.label(labelName)).Load(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(pairs))
	ids := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.LabelName != labelName {
			continue
		}
		if _, ok := seen[p.EntityID]; ok {
			continue
		}
		seen[p.EntityID] = struct{}{}
		ids = append(ids, p.EntityID)
	}
	sort.Strings(ids)
	a.logger.Printf("read %d entities for %s from %s", len(ids), labelName, cfg.Namespace)
	return ids, nil
}
