// Package config provides loading, merging, and validation of the settings
// of the confbuild command itself (not of the configurations it builds).
//
// Settings are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON settings file
//  3. Environment variables
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig]; [StructuredConfig.BuilderOptions]
// maps the result to builder options.
package config
