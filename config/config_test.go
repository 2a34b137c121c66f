/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/tagstore/errors"
)

var configVars = []string{
	"AWS_ACCESS_KEY", "AWS_SECRET_KEY", "AWS_REGION", "AWS_DDB_TABLE",
	"TAGSTORE_NAMESPACE", "TAGSTORE_PALETTE", "TAGSTORE_PRUNE_EMPTY",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range configVars {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultNamespace, cfg.Namespace)
	assert.False(t, cfg.PruneEmpty)
	assert.True(t, errors.IsValidationError(cfg.ValidateRemote()))
}

func TestFromEnv_Values(t *testing.T) {
	clearEnv(t)
	t.Setenv("AWS_ACCESS_KEY", "AKIA")
	t.Setenv("AWS_SECRET_KEY", "secret")
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("AWS_DDB_TABLE", "tags")
	t.Setenv("TAGSTORE_NAMESPACE", "team-a")
	t.Setenv("TAGSTORE_PALETTE", "palette.yaml")
	t.Setenv("TAGSTORE_PRUNE_EMPTY", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		AWSAccessKey: "AKIA",
		AWSSecretKey: "secret",
		AWSRegion:    "us-east-1",
		TableName:    "tags",
		Namespace:    "team-a",
		PaletteFile:  "palette.yaml",
		PruneEmpty:   true,
	}, cfg)
	assert.NoError(t, cfg.ValidateRemote())
}

func TestFromEnv_BadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("TAGSTORE_PRUNE_EMPTY", "sometimes")

	_, err := FromEnv()
	assert.True(t, errors.IsValidationError(err))
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("AWS_DDB_TABLE=from-file\nTAGSTORE_NAMESPACE=filens\n"), 0o600))
	t.Setenv("TAGSTORE_NAMESPACE", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.TableName)
	assert.Equal(t, "from-env", cfg.Namespace)
}

func TestLoad_MissingEnvFileIsFine(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
