/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"

	"github.com/suparena/tagstore/errors"
)

// Index maps describe how a persisted record type is keyed in DynamoDB.
// Each value is a template whose {Field} macros are filled from the record.
var (
	indexMaps   = make(map[reflect.Type]map[string]string)
	indexMapsMu sync.RWMutex
)

// RegisterIndexMap associates record type T with a key template map.
// The map must define both PK and SK.
func RegisterIndexMap[T any](idxMap map[string]string) error {
	if idxMap["PK"] == "" || idxMap["SK"] == "" {
		return errors.NewValidationError("indexMap", "PK and SK templates are required")
	}

	copied := make(map[string]string, len(idxMap))
	for k, v := range idxMap {
		copied[k] = v
	}

	indexMapsMu.Lock()
	defer indexMapsMu.Unlock()
	indexMaps[reflect.TypeOf((*T)(nil)).Elem()] = copied
	return nil
}

// GetIndexMap returns the key template map registered for T.
func GetIndexMap[T any]() (map[string]string, bool) {
	indexMapsMu.RLock()
	defer indexMapsMu.RUnlock()
	m, ok := indexMaps[reflect.TypeOf((*T)(nil)).Elem()]
	return m, ok
}
