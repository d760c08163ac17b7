package config

import (
	ncerr "github.com/redar98/PAD/internal/errors"
)

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Host == "" {
		return &ncerr.ConfigError{
			Field:   "host",
			Message: "server host is required",
			Hint:    "pass --host or a positional <host>, or set " + EnvPrefix + "HOST",
		}
	}
	if c.Port < 1 || c.Port > 65535 {
		return &ncerr.ConfigError{
			Field:   "port",
			Value:   c.Port,
			Message: "out of range 1-65535",
			Hint:    "the pub/sub server listens on 8787 by default",
		}
	}
	if c.ChunkSize < 1 {
		return &ncerr.ConfigError{
			Field:   "chunk-size",
			Value:   c.ChunkSize,
			Message: "must be at least 1 byte",
		}
	}
	if c.Sentinel == "" {
		return &ncerr.ConfigError{Field: "quit-command", Message: "must not be empty"}
	}
	if c.Timeout < 0 {
		return &ncerr.ConfigError{Field: "timeout", Value: c.Timeout, Message: "must not be negative"}
	}
	if c.TunnelEnabled && c.TunnelHost == "" {
		return &ncerr.ConfigError{
			Field:   "tunnel",
			Value:   c.TunnelSpec,
			Message: "tunnel host is required",
			Hint:    "use -T [user@]host[:port]",
		}
	}
	return nil
}
