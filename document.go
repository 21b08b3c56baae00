// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package layeredconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// readDocument reads and parses one YAML source file into a dynamic tree of
// nested map[string]any mappings and scalar leaves.
//
// YAML anchors and aliases are expanded by the decoder, so the returned tree
// never contains unresolved references. Returns a wrapped [ErrFileNotFound]
// when the file does not exist, [ErrEmptyDocument] when the file parses to
// nothing, and [ErrNotMapping] when the top level is not a mapping.
func readDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("error reading config file %q: %w", path, err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding config file %q: %w", path, err)
	}

	if doc == nil {
		return nil, fmt.Errorf("%w: %q", ErrEmptyDocument, path)
	}

	tree, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotMapping, path)
	}

	return tree, nil
}
