package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string

	TokenSecret string
	SessionTTL  time.Duration

	RazorpayKeyID     string
	RazorpayKeySecret string
	Currency          string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	MailFromName string

	S3Endpoint   string
	S3AccessKey  string
	S3SecretKey  string
	S3UseSSL     bool
	FilesBucket  string
	MediaBucket  string
	AvatarBucket string

	DownloadURLTTL  time.Duration
	ReaperInterval  time.Duration
	PendingOrderTTL time.Duration
	ReaperBatchSize int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultTokenSecret     = "change-me-in-production"
	defaultSessionTTL      = 24 * time.Hour
	defaultCurrency        = "INR"
	defaultSMTPHost        = "smtp-relay.brevo.com"
	defaultSMTPPort        = 587
	defaultMailFrom        = "noreply@creativecascade.in"
	defaultMailFromName    = "Creative Cascade"
	defaultFilesBucket     = "product-files"
	defaultMediaBucket     = "media"
	defaultAvatarBucket    = "avatars"
	defaultDownloadURLTTL  = 60 * time.Second
	defaultReaperInterval  = time.Hour
	defaultPendingOrderTTL = 24 * time.Hour
	defaultReaperBatchSize = 100
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from .env, environment variables, and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		TokenSecret:       getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		SessionTTL:        getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		RazorpayKeyID:     getString(lookup, "RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getString(lookup, "RAZORPAY_KEY_SECRET", ""),
		Currency:          getString(lookup, "CURRENCY", defaultCurrency),
		SMTPHost:          getString(lookup, "SMTP_HOST", defaultSMTPHost),
		SMTPPort:          getInt(lookup, "SMTP_PORT", defaultSMTPPort),
		SMTPUser:          getString(lookup, "SMTP_USER", ""),
		SMTPPassword:      getString(lookup, "SMTP_PASS", ""),
		MailFrom:          getString(lookup, "MAIL_FROM", defaultMailFrom),
		MailFromName:      getString(lookup, "MAIL_FROM_NAME", defaultMailFromName),
		S3Endpoint:        getString(lookup, "S3_ENDPOINT", ""),
		S3AccessKey:       getString(lookup, "S3_ACCESS_KEY", ""),
		S3SecretKey:       getString(lookup, "S3_SECRET_KEY", ""),
		S3UseSSL:          getBool(lookup, "S3_USE_SSL", true),
		FilesBucket:       getString(lookup, "S3_FILES_BUCKET", defaultFilesBucket),
		MediaBucket:       getString(lookup, "S3_MEDIA_BUCKET", defaultMediaBucket),
		AvatarBucket:      getString(lookup, "S3_AVATAR_BUCKET", defaultAvatarBucket),
		DownloadURLTTL:    getDuration(lookup, "DOWNLOAD_URL_TTL", defaultDownloadURLTTL),
		ReaperInterval:    getDuration(lookup, "REAPER_INTERVAL", defaultReaperInterval),
		PendingOrderTTL:   getDuration(lookup, "PENDING_ORDER_TTL", defaultPendingOrderTTL),
		ReaperBatchSize:   getInt(lookup, "REAPER_BATCH_SIZE", defaultReaperBatchSize),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("marketplace", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		downloadTTLStr     = cfg.DownloadURLTTL.String()
		reaperIntervalStr  = cfg.ReaperInterval.String()
		pendingTTLStr      = cfg.PendingOrderTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing session tokens")
	fs.StringVar(&cfg.S3Endpoint, "s3-endpoint", cfg.S3Endpoint, "S3-compatible storage endpoint")
	fs.StringVar(&downloadTTLStr, "download-ttl", downloadTTLStr, "Signed download URL lifetime")
	fs.StringVar(&reaperIntervalStr, "reaper-interval", reaperIntervalStr, "Interval between stale order sweeps")
	fs.StringVar(&pendingTTLStr, "pending-ttl", pendingTTLStr, "Age after which unpaid orders are reaped")
	fs.IntVar(&cfg.ReaperBatchSize, "reaper-batch", cfg.ReaperBatchSize, "Maximum orders removed per sweep")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.DownloadURLTTL, err = time.ParseDuration(downloadTTLStr); err != nil {
		return nil, fmt.Errorf("invalid download ttl: %w", err)
	}
	if cfg.ReaperInterval, err = time.ParseDuration(reaperIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid reaper interval: %w", err)
	}
	if cfg.PendingOrderTTL, err = time.ParseDuration(pendingTTLStr); err != nil {
		return nil, fmt.Errorf("invalid pending ttl: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if cfg.DownloadURLTTL <= 0 {
		cfg.DownloadURLTTL = defaultDownloadURLTTL
	}
	if cfg.ReaperInterval <= 0 {
		cfg.ReaperInterval = defaultReaperInterval
	}
	if cfg.PendingOrderTTL <= 0 {
		cfg.PendingOrderTTL = defaultPendingOrderTTL
	}
	if cfg.ReaperBatchSize <= 0 {
		cfg.ReaperBatchSize = defaultReaperBatchSize
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}
	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		return nil, fmt.Errorf("razorpay credentials must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
