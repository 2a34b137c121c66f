/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package validate checks entity ids and label names at the boundary, before
// they reach the tagging core.
//
// Rules are deliberately few. Labels are free-form user text, so only inputs
// that cannot be a sensible key are rejected.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/suparena/tagstore/errors"
)

// MaxKeyLen bounds entity ids and label names in bytes.
const MaxKeyLen = 256

// EntityID validates an entity identifier.
func EntityID(id string) error {
	return key("entity", id)
}

// LabelName validates a label name.
func LabelName(name string) error {
	return key("label", name)
}

// Pair validates both halves of an association.
func Pair(entityID, labelName string) error {
	if err := EntityID(entityID); err != nil {
		return err
	}
	return LabelName(labelName)
}

func key(kind, k string) error {
	switch {
	case k == "":
		return errors.NewKeyError(kind, k, "empty")
	case strings.TrimSpace(k) == "":
		return errors.NewKeyError(kind, k, "blank")
	case strings.TrimSpace(k) != k:
		return errors.NewKeyError(kind, k, "leading or trailing whitespace")
	case strings.ContainsRune(k, 0):
		return errors.NewKeyError(kind, k, "contains NUL byte")
	case !utf8.ValidString(k):
		return errors.NewKeyError(kind, k, "not valid UTF-8")
	case len(k) > MaxKeyLen:
		return errors.NewKeyError(kind, truncate(k, 32), "longer than 256 bytes")
	}
	return nil
}

// truncate shortens valid UTF-8 s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
