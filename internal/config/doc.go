// BrandGen - AI Marketing Campaign Studio
// Copyright 2026 K. Lawrence (klawrence)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/klawrence/brandgen

// Package config provides layered configuration loading for BrandGen
// using Koanf v2.
//
// Configuration is resolved in three layers with clear precedence:
//
//  1. Built-in defaults (lowest priority)
//  2. Optional YAML config file
//  3. Environment variables (highest priority)
//
// Environment variables map to nested config paths through an explicit
// mapping table; unknown variables are ignored so the process
// environment cannot pollute the configuration.
//
// Example:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("failed to load configuration")
//	}
package config
