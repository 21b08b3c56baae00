// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package layeredconfig

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the loader and the [Config] accessors.
// Callers match them with [errors.Is]; the typed errors below carry the
// offending path and unwrap to these sentinels.
var (
	// ErrStructureMismatch indicates that the default and local documents
	// diverge in key structure at some nesting level.
	ErrStructureMismatch = errors.New("config structure mismatch")
	// ErrFileNotFound indicates that a source document does not exist.
	ErrFileNotFound = errors.New("config file not found")
	// ErrEmptyDocument indicates that a source document parsed to nothing
	// (empty file or only comments).
	ErrEmptyDocument = errors.New("config file is empty")
	// ErrKeyNotFound indicates an access to a configuration path that does
	// not exist in the merged document.
	ErrKeyNotFound = errors.New("config key not found")
	// ErrNotMapping indicates that a source document's top level is not a
	// key-value mapping.
	ErrNotMapping = errors.New("config document is not a mapping")
)

// Issue describes a single structural divergence between the default and
// local documents.
type Issue struct {
	// Path is the dotted path of the mapping level where the divergence was
	// found ("(root)" for the top level).
	Path string
	// Reason is a human-readable description of the divergence.
	Reason string
}

func (i Issue) String() string {
	return i.Path + ": " + i.Reason
}

// StructureError reports every structural divergence found between the two
// documents. It unwraps to [ErrStructureMismatch].
type StructureError struct {
	// Issues holds all divergences in document order, one per mapping level
	// or mistyped key.
	Issues []Issue
}

func (e *StructureError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}

	return fmt.Sprintf("%v: %s", ErrStructureMismatch, strings.Join(parts, "; "))
}

func (e *StructureError) Unwrap() error {
	return ErrStructureMismatch
}

// KeyNotFoundError reports an access to an undeclared configuration path.
// It unwraps to [ErrKeyNotFound].
type KeyNotFoundError struct {
	// Path is the dotted path that was requested.
	Path string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%v: %q", ErrKeyNotFound, e.Path)
}

func (e *KeyNotFoundError) Unwrap() error {
	return ErrKeyNotFound
}
