// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Supported values of Files.Backend.
const (
	FilesBackendNone  = ""
	FilesBackendDrive = "drive"
	FilesBackendS3    = "s3"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. All violations are
// reported together.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.App.validate(),
		cfg.Storage.validate(),
		cfg.Server.validate(),
		cfg.Adapter.validate(),
	)
}

func (a App) validate() error {
	switch {
	case a.TokenSignKey == "":
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	case a.TokenIssuer == "":
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	case a.TokenDuration <= 0:
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	case a.OTPLength < 4 || a.OTPLength > 10:
		return fmt.Errorf("%w: otp length must be between 4 and 10", ErrInvalidAppConfigs)
	case a.OTPTTL < 0:
		return fmt.Errorf("%w: otp ttl must not be negative", ErrInvalidAppConfigs)
	case a.OTPHashKey == "":
		return fmt.Errorf("%w: otp hash key is required", ErrInvalidAppConfigs)
	case len(a.AllowedEmailDomains) == 0:
		return fmt.Errorf("%w: at least one allowed email domain is required", ErrInvalidAppConfigs)
	case a.PasswordReuseCheck && a.PasswordReuseScanLimit <= 0:
		return fmt.Errorf("%w: password reuse scan limit must be positive", ErrInvalidAppConfigs)
	}

	return nil
}

func (s Storage) validate() error {
	if s.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if s.Redis.Address == "" {
		return fmt.Errorf("%w: redis address is required", ErrInvalidStorageConfigs)
	}

	return nil
}

func (s Server) validate() error {
	if s.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (a Adapter) validate() error {
	u, err := url.Parse(a.Scorer.URL)
	if a.Scorer.URL == "" || err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: scorer url must be an absolute URL", ErrInvalidAdapterConfigs)
	}
	if a.Scorer.Timeout <= 0 {
		return fmt.Errorf("%w: scorer timeout must be positive", ErrInvalidAdapterConfigs)
	}
	if a.SMTP.Host == "" || (a.SMTP.From == "" && a.SMTP.User == "") {
		return fmt.Errorf("%w: smtp host and a sender or user are required", ErrInvalidAdapterConfigs)
	}

	switch a.Files.Backend {
	case FilesBackendNone:
	case FilesBackendDrive:
		if a.Drive.ClientID == "" || a.Drive.ClientSecret == "" || a.Drive.RefreshToken == "" {
			return fmt.Errorf("%w: drive client id, secret and refresh token are required", ErrInvalidAdapterConfigs)
		}
	case FilesBackendS3:
		if a.S3.Bucket == "" || a.S3.Region == "" {
			return fmt.Errorf("%w: s3 bucket and region are required", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown files backend %q", ErrInvalidAdapterConfigs, a.Files.Backend)
	}

	return nil
}
