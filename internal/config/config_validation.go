// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Fallback values applied by applyDefaults for fields that were not set by
// any configuration source.
const (
	defaultHTTPAddress    = ":8080"
	defaultTokenIssuer    = "go-blog-engine"
	defaultTokenDuration  = 24 * time.Hour
	defaultStaticBasePath = "/static/images_html"
	defaultSessionTTL     = 12 * time.Hour
	defaultSweepInterval  = 10 * time.Minute
)

// applyDefaults fills zero-valued optional fields of the merged config.
// Required fields (DSN, keys, admin credentials) stay empty and are caught
// by validate.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.StaticBasePath == "" {
		cfg.App.StaticBasePath = defaultStaticBasePath
	}
	if cfg.Admin.SessionTTL == 0 {
		cfg.Admin.SessionTTL = defaultSessionTTL
	}
	if cfg.Workers.SweepInterval == 0 {
		cfg.Workers.SweepInterval = defaultSweepInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return ErrInvalidAdminConfigs
	}

	return nil
}
