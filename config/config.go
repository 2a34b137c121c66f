/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config reads tagstore settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/suparena/tagstore/errors"
)

// DefaultNamespace is used when TAGSTORE_NAMESPACE is unset.
const DefaultNamespace = "default"

// Config holds the settings used by tagctl and other hosts of the library.
type Config struct {
	AWSAccessKey string
	AWSSecretKey string
	AWSRegion    string
	TableName    string

	// Namespace partitions tag sets sharing one table.
	Namespace string
	// PaletteFile is an optional YAML color table.
	PaletteFile string
	// PruneEmpty drops index keys whose last association is detached.
	PruneEmpty bool
}

// Load reads .env files (if present) into the environment and builds a Config.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment.
func FromEnv() (Config, error) {
	cfg := Config{
		AWSAccessKey: os.Getenv("AWS_ACCESS_KEY"),
		AWSSecretKey: os.Getenv("AWS_SECRET_KEY"),
		AWSRegion:    os.Getenv("AWS_REGION"),
		TableName:    os.Getenv("AWS_DDB_TABLE"),
		Namespace:    os.Getenv("TAGSTORE_NAMESPACE"),
		PaletteFile:  os.Getenv("TAGSTORE_PALETTE"),
	}
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}

	if v := os.Getenv("TAGSTORE_PRUNE_EMPTY"); v != "" {
		prune, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.NewValidationError("TAGSTORE_PRUNE_EMPTY", fmt.Sprintf("not a boolean: %q", v))
		}
		cfg.PruneEmpty = prune
	}
	return cfg, nil
}

// ValidateRemote checks the settings needed to reach DynamoDB.
func (c Config) ValidateRemote() error {
	required := []struct{ name, value string }{
		{"AWS_REGION", c.AWSRegion},
		{"AWS_DDB_TABLE", c.TableName},
		{"AWS_ACCESS_KEY", c.AWSAccessKey},
		{"AWS_SECRET_KEY", c.AWSSecretKey},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.NewValidationError(r.name, "must be set")
		}
	}
	return nil
}
