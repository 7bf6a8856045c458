// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package builder assembles one configuration per environment from a tree of
// small JSON settings documents.
//
// Layout under the configuration root:
//
//	<path>/.env                     optional, applied to the environment first
//	<path>/envs/__defaults__/*.json defaults, applied to every environment
//	<path>/envs/<env>/*.json        per-environment overrides
//
// A document named config.json contributes keys to the root of the
// configuration; any other document X.json contributes to the section
// XConfig. Sections must be declared by the defaults directory. String
// values of the form "$env:NAME" are replaced by the value of the
// environment variable NAME.
//
// Typical use:
//
//	b, err := builder.New(builder.Options{Path: "./config"})
//	if err != nil {
//		return err
//	}
//	cfg, err := b.Build("production")
//	if err != nil {
//		return err
//	}
//	port, _ := cfg.Lookup("serverConfig", "port")
//
// Built configurations are frozen by default and cached per environment by
// the builder that produced them.
package builder
