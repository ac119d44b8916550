// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package config defines the format-agnostic model of a pipeline file and
// the Loader interface implemented by each supported file format.
//
// # Core Concepts
//
//   - Pipeline: everything read from one file. It carries the raw default
//     section and the ordered list of steps.
//
//   - Step: one named comparison. Its attributes stay as a raw map until the
//     executor resolves them, so a step with a missing or ill-typed key fails
//     on its own without taking the rest of the file down.
//
//   - Settings: the typed view of a default section, with built-in defaults
//     filled in. Resolving settings is the only place a whole file can be
//     rejected after loading.
//
// Attribute values are whatever the loader produced: HCL numbers arrive as
// float64, YAML integers as int. Consumers go through check.AsNumber and the
// registry.Args getters rather than asserting concrete types.
package config
