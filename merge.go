// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package layeredconfig

import (
	"fmt"

	"dario.cat/mergo"
)

// mergeDocuments combines a validated default/local document pair into one
// tree. The result starts as a deep copy of the local document; mergo then
// fills every empty slot (nil, "", zero) from the default document, so a
// blank secret placeholder in the default file is replaced by the local value
// while an unset local value falls back to the tracked default.
//
// Neither input is modified. Merging a document with itself returns an equal
// tree.
func mergeDocuments(def, local map[string]any) (map[string]any, error) {
	merged := deepCopy(local)
	if err := mergo.Merge(&merged, def); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	return merged, nil
}

// overlay merges the src mapping on top of a deep copy of dst, src values
// winning on key collisions. Used by [Config.Part] to apply the shared
// "general" section over a named section.
func overlay(dst, src map[string]any) (map[string]any, error) {
	merged := deepCopy(dst)
	if err := mergo.Merge(&merged, src, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error overlaying configs: %w", err)
	}

	return merged, nil
}

// deepCopy clones a document tree so later mutation of the copy cannot leak
// into the source. Sequences are copied shallowly per element; scalars copy
// by value.
func deepCopy(tree map[string]any) map[string]any {
	copied := make(map[string]any, len(tree))
	for key, value := range tree {
		switch typed := value.(type) {
		case map[string]any:
			copied[key] = deepCopy(typed)
		case []any:
			items := make([]any, len(typed))
			for i, item := range typed {
				if child, ok := item.(map[string]any); ok {
					items[i] = deepCopy(child)
					continue
				}
				items[i] = item
			}
			copied[key] = items
		default:
			copied[key] = value
		}
	}

	return copied
}
