// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the merged server configuration satisfies all
// invariants before it is used at startup.
//
// A missing token secret fails closed: outside development mode startup is
// refused with [ErrMissingTokenSecret]; in development mode the public
// [DevelopmentTokenSecret] is substituted so local runs work out of the box.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSecret == "" {
		if !cfg.App.IsDevelopment() {
			return ErrMissingTokenSecret
		}
		cfg.Auth.TokenSecret = DevelopmentTokenSecret
	}

	if cfg.Auth.TokenExpiry <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTokenExpiry, cfg.Auth.TokenExpiry.String())
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

// UsesDevelopmentSecret reports whether tokens are signed with the public
// fallback secret.
func (cfg *StructuredConfig) UsesDevelopmentSecret() bool {
	return cfg.Auth.TokenSecret == DevelopmentTokenSecret
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	u, err := url.Parse(cfg.Adapter.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}

	if cfg.Adapter.TokenFile == "" {
		return fmt.Errorf("%w: empty token file", ErrInvalidAdapterConfigs)
	}

	return nil
}
