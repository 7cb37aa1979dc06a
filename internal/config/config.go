// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// shortlister service. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity and session settings: token parameters, OTP
	// policy, the signup email allow-list and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the PostgreSQL and Redis connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for outbound integrations: the scorer
	// webhook, the SMTP relay and the resume file storage backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background tasks.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle, signup policy and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// OTPLength is the number of digits of a signup OTP.
	// Env: APP_OTP_LENGTH
	OTPLength int `env:"OTP_LENGTH"`

	// OTPTTL bounds the lifetime of a pending signup. Zero keeps pending
	// signups until they are verified or overwritten.
	// Env: APP_OTP_TTL
	OTPTTL time.Duration `env:"OTP_TTL"`

	// OTPHashKey is the HMAC key used to digest OTPs before staging them.
	// Env: APP_OTP_HASH_KEY
	OTPHashKey string `env:"OTP_HASH_KEY"`

	// AllowedEmailDomains lists the domains accepted at signup.
	// Env: APP_ALLOWED_EMAIL_DOMAINS (comma separated)
	AllowedEmailDomains []string `env:"ALLOWED_EMAIL_DOMAINS" envSeparator:","`

	// PasswordReuseCheck enables rejecting a signup whose password matches
	// an existing user's password.
	// Env: APP_PASSWORD_REUSE_CHECK
	PasswordReuseCheck bool `env:"PASSWORD_REUSE_CHECK"`

	// PasswordReuseScanLimit caps how many of the most recent users the
	// reuse check compares against.
	// Env: APP_PASSWORD_REUSE_SCAN_LIMIT
	PasswordReuseScanLimit int `env:"PASSWORD_REUSE_SCAN_LIMIT"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the pending-signup store settings.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds connection settings for the pending-signup store.
type Redis struct {
	// Address is "host:port" of the Redis server.
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`

	// Password is optional.
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// DB selects the logical Redis database.
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration for outbound integrations.
type Adapter struct {
	Scorer Scorer `envPrefix:"SCORER_"`
	SMTP   SMTP   `envPrefix:"SMTP_"`
	Files  Files  `envPrefix:"FILES_"`
	Drive  Drive  `envPrefix:"DRIVE_"`
	S3     S3     `envPrefix:"S3_"`
}

// Scorer configures the scoring webhook.
type Scorer struct {
	// URL receives every submitted or updated JD.
	// Env: ADAPTER_SCORER_URL
	URL string `env:"URL"`

	// Timeout bounds one notification.
	// Env: ADAPTER_SCORER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// SMTP configures the relay used to deliver signup OTPs.
type SMTP struct {
	Host     string `env:"HOST" json:"host"`
	Port     int    `env:"PORT" json:"port"`
	User     string `env:"USER" json:"user"`
	Password string `env:"PASSWORD" json:"password"`
	From     string `env:"FROM" json:"from"`
}

// Files selects the resume storage backend.
type Files struct {
	// Backend is "drive", "s3" or empty to disable uploads.
	// Env: ADAPTER_FILES_BACKEND
	Backend string `env:"BACKEND"`

	// MaxUploadSize caps a multipart upload request in bytes.
	// Env: ADAPTER_FILES_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Drive holds the OAuth client used for Google Drive uploads.
type Drive struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RefreshToken string `env:"REFRESH_TOKEN"`
	FolderID     string `env:"FOLDER_ID"`
}

// S3 holds the object store used for resume uploads.
type S3 struct {
	Region    string `env:"REGION"`
	Endpoint  string `env:"ENDPOINT"`
	Bucket    string `env:"BUCKET"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// LinkTTL is the lifetime of presigned download links.
	LinkTTL time.Duration `env:"LINK_TTL"`
}

// Workers holds configuration for background tasks.
type Workers struct {
	// ShutdownTimeout bounds how long in-flight scorer notifications are
	// awaited on shutdown.
	// Env: WORKERS_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first non-zero value wins, in order:
//  1. Environment variables (a .env file is loaded into the environment first)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
