// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import "errors"

// Errors returned by [ConfigBuilder.Build] and [Configuration.ReadEnvFile].
// They are always wrapped with the offending environment, path or name;
// match them with errors.Is.
var (
	// ErrMissingPath is returned by [New] when Options.Path is empty.
	ErrMissingPath = errors.New("configuration path is required")
	// ErrUnknownEnvironment indicates an empty environment name or a missing
	// envs/<name> directory.
	ErrUnknownEnvironment = errors.New("unknown environment")
	// ErrDirectoryRead indicates that an existing settings directory could
	// not be listed.
	ErrDirectoryRead = errors.New("unable to read environments config directory")
	// ErrInvalidSettingsDocument indicates a settings or dotenv file that
	// could not be parsed, or parsed into something other than an object.
	ErrInvalidSettingsDocument = errors.New("not a valid settings document")
	// ErrUnknownSection indicates that a non-default environment supplied a
	// section the defaults never declared.
	ErrUnknownSection = errors.New("unknown config section")
	// ErrFileAccess indicates that ReadEnvFile found the file in neither the
	// environment nor the defaults directory.
	ErrFileAccess = errors.New("unable to read file from config")
)
