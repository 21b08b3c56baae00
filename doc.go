// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package layeredconfig loads application configuration from a pair of YAML
// documents: a tracked default file declaring every key (secret values left
// blank) and an untracked local file supplying the actual secrets and
// environment-specific values.
//
// Both documents must share identical key structure at every nesting level;
// any divergence is reported as a [StructureError] listing every offending
// path. After validation the documents are merged: a non-empty local leaf
// wins, an empty local slot is filled from the default file. The merged
// result is exposed through an immutable [Config] with dotted-path typed
// accessors.
//
// Typical usage:
//
//	cfg, err := layeredconfig.NewLoader().
//		WithDefaultFile("configs/config-default.yaml").
//		WithLocalFile("configs/config.yaml").
//		WithEnv().
//		Load()
//	if err != nil {
//	    log.Fatal().Err(err).Msg("error loading configs")
//	}
//	apiKey, err := cfg.String("services.api_key")
//
// Configuration is read once at construction; there is no hot reload and the
// returned [Config] is safe for concurrent reads.
package layeredconfig
