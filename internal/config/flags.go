package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

type flagValues struct {
	serverAddress  NetAddress
	databaseDSN    string
	redisAddress   string
	jsonConfigPath string
	tokenSignKey   string
	tokenIssuer    string
	tokenDuration  time.Duration
	requestTimeout time.Duration
	otpTTL         time.Duration
	otpHashKey     string
	scorerURL      string
	filesBackend   string
}

var (
	commandLineOnce   sync.Once
	commandLineValues *flagValues
)

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-r redis address in format [host]:[port]
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-otp-ttl pending signup lifetime, 0 disables expiry
//	-otp-hash-key OTP digest key
//	-scorer-url scoring webhook URL
//	-files-backend resume storage backend ("drive" or "s3")
func ParseFlags() *StructuredConfig {
	commandLineOnce.Do(func() {
		commandLineValues = registerFlags(flag.CommandLine)
	})
	if !flag.Parsed() {
		flag.Parse()
	}

	return commandLineValues.config()
}

// parseFlagSet parses args on a fresh flag set.
func parseFlagSet(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("shortlister", flag.ContinueOnError)
	values := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return values.config(), nil
}

func registerFlags(fs *flag.FlagSet) *flagValues {
	v := &flagValues{}

	fs.Var(&v.serverAddress, "a", "Net address host:port")
	fs.StringVar(&v.databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&v.redisAddress, "r", "", "Redis address host:port")
	fs.StringVar(&v.jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&v.jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&v.tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&v.tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&v.tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&v.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&v.otpTTL, "otp-ttl", 0, "Pending signup lifetime, 0 disables expiry")
	fs.StringVar(&v.otpHashKey, "otp-hash-key", "", "OTP digest key")
	fs.StringVar(&v.scorerURL, "scorer-url", "", "Scoring webhook URL")
	fs.StringVar(&v.filesBackend, "files-backend", "", "Resume storage backend (drive, s3)")

	return v
}

func (v *flagValues) config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  v.tokenSignKey,
			TokenIssuer:   v.tokenIssuer,
			TokenDuration: v.tokenDuration,
			OTPTTL:        v.otpTTL,
			OTPHashKey:    v.otpHashKey,
		},
		Storage: Storage{
			DB:    DB{DSN: v.databaseDSN},
			Redis: Redis{Address: v.redisAddress},
		},
		Server: Server{
			HTTPAddress:    v.serverAddress.String(),
			RequestTimeout: v.requestTimeout,
		},
		Adapter: Adapter{
			Scorer: Scorer{URL: v.scorerURL},
			Files:  Files{Backend: v.filesBackend},
		},
		JSONFilePath: v.jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is empty
// or "localhost", and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
