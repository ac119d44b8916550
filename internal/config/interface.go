// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import "context"

// Loader is the interface for a format-specific pipeline loader.
type Loader interface {
	// Extensions lists the file extensions, including the leading dot, that
	// the loader understands.
	Extensions() []string

	// Load reads one file and translates it into the format-agnostic model.
	Load(ctx context.Context, path string) (*Pipeline, error)
}
