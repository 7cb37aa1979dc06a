package config

import "time"

const defaultDotEnvPath = ".env"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:            "resume-shortlister",
			TokenDuration:          24 * time.Hour,
			OTPLength:              6,
			AllowedEmailDomains:    []string{"gmail.com"},
			PasswordReuseScanLimit: 1000,
			Version:                "dev",
			LogLevel:               "debug",
		},
		Server: Server{
			HTTPAddress:    ":8000",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			Scorer: Scorer{Timeout: 30 * time.Second},
			SMTP:   SMTP{Port: 587},
			Files:  Files{MaxUploadSize: 32 << 20},
			S3:     S3{LinkTTL: 7 * 24 * time.Hour},
		},
		Workers: Workers{ShutdownTimeout: 35 * time.Second},
	}
}
