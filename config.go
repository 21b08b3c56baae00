// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package layeredconfig

import (
	"fmt"
	"strings"
	"time"
)

// generalSection is the shared section overlaid onto named sections by
// [Config.Part].
const generalSection = "general"

// Config is the immutable accessor over a merged configuration document.
// It is constructed once by [Loader.Load] and is safe for concurrent reads;
// callers receive it explicitly instead of relying on a process-wide global.
type Config struct {
	tree map[string]any
}

// Get resolves a dotted key path ("storage.db.dsn") against the merged
// document and returns the node at that path. Returns a
// *[KeyNotFoundError] when any path segment is undeclared or descends
// through a leaf.
func (c *Config) Get(path string) (Value, error) {
	current := any(c.tree)
	for _, segment := range strings.Split(path, ".") {
		mapping, ok := current.(map[string]any)
		if !ok {
			return Value{}, &KeyNotFoundError{Path: path}
		}

		current, ok = mapping[segment]
		if !ok {
			return Value{}, &KeyNotFoundError{Path: path}
		}
	}

	return Value{raw: current}, nil
}

// Has reports whether the dotted key path exists in the merged document.
func (c *Config) Has(path string) bool {
	_, err := c.Get(path)
	return err == nil
}

// Keys returns the sorted key set of the top mapping level.
func (c *Config) Keys() []string {
	return sortedKeys(c.tree)
}

// String returns the string leaf at the dotted path.
func (c *Config) String(path string) (string, error) {
	value, err := c.Get(path)
	if err != nil {
		return "", err
	}

	s, err := value.String()
	if err != nil {
		return "", fmt.Errorf("%q: %w", path, err)
	}

	return s, nil
}

// Int returns the integer leaf at the dotted path.
func (c *Config) Int(path string) (int, error) {
	value, err := c.Get(path)
	if err != nil {
		return 0, err
	}

	n, err := value.Int()
	if err != nil {
		return 0, fmt.Errorf("%q: %w", path, err)
	}

	return n, nil
}

// Float returns the numeric leaf at the dotted path as a float64.
func (c *Config) Float(path string) (float64, error) {
	value, err := c.Get(path)
	if err != nil {
		return 0, err
	}

	f, err := value.Float()
	if err != nil {
		return 0, fmt.Errorf("%q: %w", path, err)
	}

	return f, nil
}

// Bool returns the boolean leaf at the dotted path.
func (c *Config) Bool(path string) (bool, error) {
	value, err := c.Get(path)
	if err != nil {
		return false, err
	}

	b, err := value.Bool()
	if err != nil {
		return false, fmt.Errorf("%q: %w", path, err)
	}

	return b, nil
}

// Duration returns the leaf at the dotted path as a time.Duration.
func (c *Config) Duration(path string) (time.Duration, error) {
	value, err := c.Get(path)
	if err != nil {
		return 0, err
	}

	d, err := value.Duration()
	if err != nil {
		return 0, fmt.Errorf("%q: %w", path, err)
	}

	return d, nil
}

// StringSlice returns the sequence at the dotted path as a []string.
func (c *Config) StringSlice(path string) ([]string, error) {
	value, err := c.Get(path)
	if err != nil {
		return nil, err
	}

	items, err := value.StringSlice()
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return items, nil
}

// Section returns a sub-Config rooted at the mapping under the dotted path.
func (c *Config) Section(path string) (*Config, error) {
	value, err := c.Get(path)
	if err != nil {
		return nil, err
	}

	mapping, err := value.Map()
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return &Config{tree: mapping}, nil
}

// Part returns the named top-level section with the "general" section merged
// on top of it, general values winning on key collisions. A null section is
// treated as empty. When the document declares no "general" section the
// named section is returned alone.
//
// The returned Config is an independent copy; reading or discarding it never
// affects the parent.
func (c *Config) Part(name string) (*Config, error) {
	raw, ok := c.tree[name]
	if !ok {
		return nil, &KeyNotFoundError{Path: name}
	}

	section, ok := raw.(map[string]any)
	if !ok && raw != nil {
		return nil, fmt.Errorf("section %q is not a mapping", name)
	}
	if section == nil {
		section = map[string]any{}
	}

	general, ok := c.tree[generalSection].(map[string]any)
	if !ok {
		return &Config{tree: deepCopy(section)}, nil
	}

	merged, err := overlay(section, general)
	if err != nil {
		return nil, fmt.Errorf("error building part %q: %w", name, err)
	}

	return &Config{tree: merged}, nil
}
