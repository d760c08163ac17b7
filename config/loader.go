package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix is prepended to every supported environment variable.
const EnvPrefix = "PUBSUBC_"

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  Boolean values accept "1",
// "true", "yes" (case-insensitive).  Call it before flag parsing so
// that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := envString("HOST"); v != "" {
		cfg.Host = v
	}
	if v := envInt("PORT"); v > 0 {
		cfg.Port = v
	}
	if v := envInt("TIMEOUT"); v > 0 {
		cfg.Timeout = time.Duration(v) * time.Second
	}
	if v := envInt("KEEPALIVE"); v != 0 {
		cfg.KeepAlive = time.Duration(v) * time.Second
	}
	if v := envInt("CHUNK_SIZE"); v > 0 {
		cfg.ChunkSize = v
	}

	// SSH tunnel
	if v := envString("TUNNEL"); v != "" {
		cfg.TunnelSpec = v
	}
	if v := envString("SSH_KEY"); v != "" {
		cfg.SSHKeyPath = v
	}
	if envBool("SSH_PASSWORD") {
		cfg.SSHPassword = true
	}
	if envBool("SSH_AGENT") {
		cfg.UseSSHAgent = true
	}
	if envBool("STRICT_HOSTKEY") {
		cfg.StrictHostKey = true
	}
	if v := envString("KNOWN_HOSTS"); v != "" {
		cfg.KnownHostsPath = v
	}

	// Output
	if v := envInt("VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envString(key string) string {
	return os.Getenv(EnvPrefix + key)
}

func envInt(key string) int {
	v := envString(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(envString(key))
	return v == "1" || v == "true" || v == "yes"
}
