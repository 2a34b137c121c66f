/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suparena/tagstore"
	"github.com/suparena/tagstore/snapshot"
	"github.com/suparena/tagstore/validate"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "tagctl",
		Short:         "Tag files with shared labels",
		Long:          `tagctl edits a YAML tag snapshot: attach and detach labels, query either direction, and push or pull the pairs to DynamoDB.`,
		Version:       tagstore.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setLogOutput(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVarP(&a.snapshotPath, "snapshot", "s", "tags.yaml", "snapshot file")
	root.PersistentFlags().StringVarP(&a.palettePath, "palette", "p", "", "YAML color table (default: $TAGSTORE_PALETTE or the built-in palette)")
	root.PersistentFlags().StringVar(&a.envFile, "env", "", "env file to load (default: .env)")
	root.PersistentFlags().BoolVar(&a.pruneEmpty, "prune-empty", false, "drop keys whose last association is detached")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(
		newAttachCmd(a),
		newDetachCmd(a),
		newLabelsCmd(a),
		newEntitiesCmd(a),
		newListCmd(a),
		newPushCmd(a),
		newPullCmd(a),
		newVersionCmd(),
	)
	return root
}

func newAttachCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "attach <entity> <label>...",
		Short: "Attach labels to an entity",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.mutate(args, func(svc *tagstore.Service, entity, label string) {
				svc.Attach(entity, label)
			})
		},
	}
}

func newDetachCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "detach <entity> <label>...",
		Short: "Detach labels from an entity",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.mutate(args, func(svc *tagstore.Service, entity, label string) {
				svc.Detach(entity, label)
			})
		},
	}
}

func (a *app) mutate(args []string, apply func(svc *tagstore.Service, entity, label string)) error {
	entity, labels := args[0], args[1:]
	for _, label := range labels {
		if err := validate.Pair(entity, label); err != nil {
			return err
		}
	}

	svc, err := a.open()
	if err != nil {
		return err
	}
	for _, label := range labels {
		apply(svc, entity, label)
	}
	return a.save(svc)
}

func newLabelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "labels <entity>",
		Short: "Print the labels on an entity with their colors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.EntityID(args[0]); err != nil {
				return err
			}
			svc, err := a.open()
			if err != nil {
				return err
			}
			for _, l := range svc.LabelsOf(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", l.Name(), l.Color())
			}
			return nil
		},
	}
}

func newEntitiesCmd(a *app) *cobra.Command {
	var fromRemote bool
	cmd := &cobra.Command{
		Use:   "entities <label>",
		Short: "Print the entities carrying a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.LabelName(args[0]); err != nil {
				return err
			}

			var ids []string
			if fromRemote {
				var err error
				if ids, err = a.remoteEntities(cmd.Context(), args[0]); err != nil {
					return err
				}
			} else {
				svc, err := a.open()
				if err != nil {
					return err
				}
				ids = svc.EntitiesOf(args[0])
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromRemote, "remote", false, "query the DynamoDB label index instead of the snapshot")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every entity/label pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open()
			if err != nil {
				return err
			}
			for _, pair := range svc.Index().Associations() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", pair.EntityID, pair.LabelName)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := tagstore.GetVersionInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tagctl version %s\n", info.Version)
			fmt.Fprintf(out, "Snapshot format: %d\n", snapshot.CurrentVersion)
			fmt.Fprintf(out, "Git commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "Go version: %s\n", info.GoVersion)
		},
	}
}
