package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig for the optional JSON file.
// Durations are written as strings ("24h", "30s").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey           string   `json:"token_sign_key"`
		TokenIssuer            string   `json:"token_issuer"`
		TokenDuration          Duration `json:"token_duration"`
		OTPLength              int      `json:"otp_length"`
		OTPTTL                 Duration `json:"otp_ttl"`
		OTPHashKey             string   `json:"otp_hash_key"`
		AllowedEmailDomains    []string `json:"allowed_email_domains"`
		PasswordReuseCheck     bool     `json:"password_reuse_check"`
		PasswordReuseScanLimit int      `json:"password_reuse_scan_limit"`
		Version                string   `json:"version"`
		LogLevel               string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Scorer struct {
			URL     string   `json:"url"`
			Timeout Duration `json:"timeout"`
		} `json:"scorer,omitempty"`

		SMTP SMTP `json:"smtp,omitempty"`

		Files struct {
			Backend       string `json:"backend"`
			MaxUploadSize int64  `json:"max_upload_size"`
		} `json:"files,omitempty"`

		Drive struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
			RefreshToken string `json:"refresh_token"`
			FolderID     string `json:"folder_id"`
		} `json:"drive,omitempty"`

		S3 struct {
			Region    string   `json:"region"`
			Endpoint  string   `json:"endpoint"`
			Bucket    string   `json:"bucket"`
			AccessKey string   `json:"access_key"`
			SecretKey string   `json:"secret_key"`
			LinkTTL   Duration `json:"link_ttl"`
		} `json:"s3,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:           j.App.TokenSignKey,
			TokenIssuer:            j.App.TokenIssuer,
			TokenDuration:          time.Duration(j.App.TokenDuration),
			OTPLength:              j.App.OTPLength,
			OTPTTL:                 time.Duration(j.App.OTPTTL),
			OTPHashKey:             j.App.OTPHashKey,
			AllowedEmailDomains:    j.App.AllowedEmailDomains,
			PasswordReuseCheck:     j.App.PasswordReuseCheck,
			PasswordReuseScanLimit: j.App.PasswordReuseScanLimit,
			Version:                j.App.Version,
			LogLevel:               j.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: j.Storage.DB.DSN},
			Redis: Redis{
				Address:  j.Storage.Redis.Address,
				Password: j.Storage.Redis.Password,
				DB:       j.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Scorer: Scorer{
				URL:     j.Adapter.Scorer.URL,
				Timeout: time.Duration(j.Adapter.Scorer.Timeout),
			},
			SMTP: j.Adapter.SMTP,
			Files: Files{
				Backend:       j.Adapter.Files.Backend,
				MaxUploadSize: j.Adapter.Files.MaxUploadSize,
			},
			Drive: Drive{
				ClientID:     j.Adapter.Drive.ClientID,
				ClientSecret: j.Adapter.Drive.ClientSecret,
				RefreshToken: j.Adapter.Drive.RefreshToken,
				FolderID:     j.Adapter.Drive.FolderID,
			},
			S3: S3{
				Region:    j.Adapter.S3.Region,
				Endpoint:  j.Adapter.S3.Endpoint,
				Bucket:    j.Adapter.S3.Bucket,
				AccessKey: j.Adapter.S3.AccessKey,
				SecretKey: j.Adapter.S3.SecretKey,
				LinkTTL:   time.Duration(j.Adapter.S3.LinkTTL),
			},
		},
		Workers: Workers{
			ShutdownTimeout: time.Duration(j.Workers.ShutdownTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
