package app

import (
	"errors"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ContentPath points at a definition file or a directory tree of them.
	ContentPath string

	LogFormat string
	LogLevel  string

	// VerifyURL, when set, is the socket.io endpoint of the peer to compare
	// checksums with after loading.
	VerifyURL          string
	VerifyTimeout      time.Duration
	InsecureSkipVerify bool
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ContentPath == "" {
		return nil, errors.New("ContentPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
