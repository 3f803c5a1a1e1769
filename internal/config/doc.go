// Package config provides configuration loading, merging, and validation
// facilities for the qrlogix server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Hardcoded fallback defaults are applied last, so the server starts with no
// configuration at all; the diagnostics endpoint reports which values came
// from the environment and which fell back.
//
// The main entry point is [GetStructuredConfig].
package config
