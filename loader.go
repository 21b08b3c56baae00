// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package layeredconfig

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Conventional source paths: the default document is tracked in version
// control with secret values blanked; the local document is git-ignored and
// supplies the actual secrets.
const (
	DefaultFilePath = "configs/config-default.yaml"
	LocalFilePath   = "configs/config.yaml"
)

// envSources carries environment overrides for the two source paths,
// parsed with the caarlos0/env library.
type envSources struct {
	// DefaultPath overrides the default document path.
	// Env: CONFIG_DEFAULT
	DefaultPath string `env:"CONFIG_DEFAULT"`

	// LocalPath overrides the local document path.
	// Env: CONFIG_LOCAL
	LocalPath string `env:"CONFIG_LOCAL"`
}

// Loader assembles a [Config] from a default/local YAML document pair.
// Options are chained fluently and Load finishes the pipeline:
//
//	cfg, err := layeredconfig.NewLoader().
//		WithDefaultFile("configs/config-default.yaml").
//		WithLocalFile("configs/config.yaml").
//		Load()
//
// A Loader is single-use; errors raised by option methods are deferred and
// returned by Load.
type Loader struct {
	defaultPath string
	localPath   string
	expandPaths bool
	log         zerolog.Logger
	err         error
}

// NewLoader returns a Loader preconfigured with the conventional source
// paths and a no-op logger.
func NewLoader() *Loader {
	return &Loader{
		defaultPath: DefaultFilePath,
		localPath:   LocalFilePath,
		log:         zerolog.Nop(),
	}
}

// WithDefaultFile sets the path of the tracked default document.
func (l *Loader) WithDefaultFile(path string) *Loader {
	l.defaultPath = path
	return l
}

// WithLocalFile sets the path of the untracked local document.
func (l *Loader) WithLocalFile(path string) *Loader {
	l.localPath = path
	return l
}

// WithEnv overrides the source paths from the CONFIG_DEFAULT and
// CONFIG_LOCAL environment variables when they are set.
func (l *Loader) WithEnv() *Loader {
	var sources envSources
	if err := env.Parse(&sources); err != nil {
		l.err = errors.Join(l.err, fmt.Errorf("error getting env configs: %w", err))
		return l
	}

	if sources.DefaultPath != "" {
		l.defaultPath = sources.DefaultPath
	}
	if sources.LocalPath != "" {
		l.localPath = sources.LocalPath
	}

	return l
}

// WithAbsolutePaths enables path expansion after the merge: *path keys are
// resolved against general.working_dir and *location keys plus resources
// sections against general.resources_dir. See [expandPaths].
func (l *Loader) WithAbsolutePaths() *Loader {
	l.expandPaths = true
	return l
}

// WithLogger attaches a zerolog logger to the load pipeline. The default is
// a no-op logger.
func (l *Loader) WithLogger(log zerolog.Logger) *Loader {
	l.log = log
	return l
}

// Load runs the pipeline: read both documents, validate their key structure,
// merge them, optionally expand paths, and wrap the result in an immutable
// [Config]. Every failure is fatal to the load; nothing is retried.
func (l *Loader) Load() (*Config, error) {
	if l.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", l.err)
	}

	def, err := readDocument(l.defaultPath)
	if err != nil {
		return nil, err
	}
	l.log.Debug().Str("path", l.defaultPath).Int("keys", len(def)).Msg("read default config")

	local, err := readDocument(l.localPath)
	if err != nil {
		return nil, err
	}
	l.log.Debug().Str("path", l.localPath).Int("keys", len(local)).Msg("read local config")

	if err := validateStructure(def, local); err != nil {
		return nil, err
	}

	merged, err := mergeDocuments(def, local)
	if err != nil {
		return nil, err
	}

	if l.expandPaths {
		if err := expandPaths(merged); err != nil {
			return nil, fmt.Errorf("error expanding paths: %w", err)
		}
	}

	l.log.Debug().Strs("sections", sortedKeys(merged)).Msg("config loaded")

	return &Config{tree: merged}, nil
}

// Load builds a [Config] from the conventional source paths with
// environment overrides applied. Shorthand for
// NewLoader().WithEnv().Load().
func Load() (*Config, error) {
	return NewLoader().WithEnv().Load()
}
