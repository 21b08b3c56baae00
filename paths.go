// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package layeredconfig

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Keys the path expansion step reads from the general section.
const (
	workingDirKey   = "working_dir"
	resourcesDirKey = "resources_dir"
	resourcesKey    = "resources"
)

// expandPaths rewrites relative filesystem references in the merged tree to
// absolute ones, in place. general.working_dir and general.resources_dir are
// made absolute first; then every string leaf under a "resources" mapping is
// joined to the resources dir, leaves whose key contains "path" are joined
// to the working dir, and leaves whose key contains "location" are joined to
// the resources dir. Already-absolute and empty values are left untouched.
func expandPaths(tree map[string]any) error {
	general, ok := tree[generalSection].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, generalSection)
	}

	workingDir, err := absoluteDir(general, workingDirKey)
	if err != nil {
		return err
	}

	resourcesDir, err := absoluteDir(general, resourcesDirKey)
	if err != nil {
		return err
	}

	rewriteLevel(tree, workingDir, resourcesDir)
	return nil
}

// absoluteDir resolves the named general.* directory to an absolute path and
// writes it back into the section.
func absoluteDir(general map[string]any, key string) (string, error) {
	dir, ok := general[key].(string)
	if !ok || dir == "" {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, generalSection+"."+key)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("error resolving %s.%s: %w", generalSection, key, err)
	}

	general[key] = abs
	return abs, nil
}

func rewriteLevel(level map[string]any, workingDir, resourcesDir string) {
	for key, value := range level {
		if child, ok := value.(map[string]any); ok {
			if strings.TrimSpace(key) == resourcesKey {
				rewriteResources(child, resourcesDir)
				continue
			}
			rewriteLevel(child, workingDir, resourcesDir)
			continue
		}

		leaf, ok := value.(string)
		if !ok || leaf == "" {
			continue
		}

		switch {
		case strings.Contains(key, "path"):
			level[key] = joinUnlessAbsolute(workingDir, leaf)
		case strings.Contains(key, "location"):
			level[key] = joinUnlessAbsolute(resourcesDir, leaf)
		}
	}
}

// rewriteResources joins every string leaf of a resources mapping to the
// resources directory regardless of key name.
func rewriteResources(resources map[string]any, resourcesDir string) {
	for key, value := range resources {
		leaf, ok := value.(string)
		if !ok || leaf == "" {
			continue
		}
		resources[key] = joinUnlessAbsolute(resourcesDir, leaf)
	}
}

func joinUnlessAbsolute(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(dir, path)
}
