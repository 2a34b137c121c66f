/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/suparena/tagstore"
	"github.com/suparena/tagstore/config"
	"github.com/suparena/tagstore/datastore"
	"github.com/suparena/tagstore/datastore/ddb"
	"github.com/suparena/tagstore/errors"
	"github.com/suparena/tagstore/registry"
	"github.com/suparena/tagstore/snapshot"
	"github.com/suparena/tagstore/storagemodels"
)

// remote is a DataStore plus the queries selecting one namespace's records.
type remote struct {
	ds        datastore.DataStore[storagemodels.Association]
	namespace *storagemodels.QueryParams
	label     func(labelName string) *storagemodels.QueryParams
}

type remoteFactory func(ctx context.Context, cfg config.Config) (*remote, error)

// app carries the state shared by all subcommands.
type app struct {
	snapshotPath string
	palettePath  string
	envFile      string
	pruneEmpty   bool
	verbose      bool

	logger *log.Logger
	remote remoteFactory
}

func newApp() *app {
	return &app{
		logger: log.New(io.Discard, "tagctl: ", 0),
		remote: dynamoRemote,
	}
}

func dynamoRemote(ctx context.Context, cfg config.Config) (*remote, error) {
	if err := cfg.ValidateRemote(); err != nil {
		return nil, err
	}
	ds, err := ddb.NewDynamodbDataStore[storagemodels.Association](ctx, cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.AWSRegion, cfg.TableName)
	if err != nil {
		return nil, err
	}
	return &remote{
		ds:        ds,
		namespace: ddb.NamespaceQuery(cfg.Namespace),
		label: func(labelName string) *storagemodels.QueryParams {
			return ddb.LabelQuery(cfg.Namespace, labelName)
		},
	}, nil
}

func (a *app) setLogOutput(w io.Writer) {
	if a.verbose {
		a.logger.SetOutput(w)
	}
}

func (a *app) config() (config.Config, error) {
	var files []string
	if a.envFile != "" {
		files = append(files, a.envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return config.Config{}, err
	}
	if a.palettePath == "" {
		a.palettePath = cfg.PaletteFile
	}
	if cfg.PruneEmpty {
		a.pruneEmpty = true
	}
	return cfg, nil
}

func (a *app) palette() (*registry.ColorTable, error) {
	if a.palettePath == "" {
		return nil, nil
	}
	f, err := os.Open(a.palettePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette: %w", err)
	}
	defer f.Close()
	a.logger.Printf("using palette %s", a.palettePath)
	return registry.LoadColorTable(f)
}

// open restores the service from the snapshot file, or starts empty when the
// file does not exist yet. An explicit palette replaces the snapshot's.
func (a *app) open() (*tagstore.Service, error) {
	if _, err := a.config(); err != nil {
		return nil, err
	}
	table, err := a.palette()
	if err != nil {
		return nil, err
	}

	var opts []tagstore.Option
	if table != nil {
		opts = append(opts, tagstore.WithColorTable(table))
	}
	if a.pruneEmpty {
		opts = append(opts, tagstore.WithPruneEmpty())
	}

	snap, err := snapshot.LoadFile(a.snapshotPath)
	if errors.IsNotFound(err) {
		a.logger.Printf("snapshot %s not found, starting empty", a.snapshotPath)
		return tagstore.NewService(opts...), nil
	}
	if err != nil {
		return nil, err
	}
	a.logger.Printf("loaded %d associations from %s", len(snap.Associations), a.snapshotPath)
	return snapshot.Restore(snap, opts...)
}

func (a *app) save(svc *tagstore.Service) error {
	snap := snapshot.Capture(svc)
	if err := snapshot.SaveFile(a.snapshotPath, snap); err != nil {
		return err
	}
	a.logger.Printf("saved %d associations to %s", len(snap.Associations), a.snapshotPath)
	return nil
}
