// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package layeredconfig

import (
	"fmt"
	"slices"
)

// rootPath labels the top mapping level in reported issues.
const rootPath = "(root)"

// validateStructure recursively confirms that the default and local documents
// declare the same set of keys at every nesting level. Leaf values are never
// inspected; only the mapping structure matters.
//
// The check is pure and collects every divergence instead of stopping at the
// first one, so a single run reports everything the operator has to fix.
// Returns nil on a structural match, or a *[StructureError] listing all
// issues.
func validateStructure(def, local map[string]any) error {
	issues := compareLevel(rootPath, def, local)
	if len(issues) > 0 {
		return &StructureError{Issues: issues}
	}

	return nil
}

// compareLevel compares the key sets of one mapping level and recurses into
// keys that are mappings on both sides. Keys are visited in sorted order so
// issue output is deterministic.
func compareLevel(path string, def, local map[string]any) []Issue {
	var issues []Issue

	for _, key := range sortedKeys(def) {
		if _, ok := local[key]; !ok {
			issues = append(issues, Issue{
				Path:   path,
				Reason: fmt.Sprintf("key %q is missing in the local document", key),
			})
		}
	}

	for _, key := range sortedKeys(local) {
		localValue := local[key]
		defValue, ok := def[key]
		if !ok {
			issues = append(issues, Issue{
				Path:   path,
				Reason: fmt.Sprintf("key %q is missing in the default document", key),
			})
			continue
		}

		defChild, defIsMapping := defValue.(map[string]any)
		localChild, localIsMapping := localValue.(map[string]any)

		switch {
		case defIsMapping && localIsMapping:
			issues = append(issues, compareLevel(childPath(path, key), defChild, localChild)...)
		case defIsMapping != localIsMapping:
			issues = append(issues, Issue{
				Path:   childPath(path, key),
				Reason: "mapping on one side, leaf value on the other",
			})
		}
	}

	return issues
}

// childPath extends a dotted issue path with one more key.
func childPath(path, key string) string {
	if path == rootPath {
		return key
	}

	return path + "." + key
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys
}
