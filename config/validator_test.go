package config

import (
	"strings"
	"testing"

	ncerr "github.com/redar98/PAD/internal/errors"
)

func TestValidate(t *testing.T) {
	valid := func() Config { return *Default() }

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string // substring; empty means valid
	}{
		{"defaults", func(c *Config) {}, ""},
		{"tunnel", func(c *Config) { c.TunnelEnabled, c.TunnelHost = true, "gw" }, ""},
		{"no host", func(c *Config) { c.Host = "" }, "--host"},
		{"port zero", func(c *Config) { c.Port = 0 }, "--port=0"},
		{"port high", func(c *Config) { c.Port = 70000 }, "out of range"},
		{"chunk zero", func(c *Config) { c.ChunkSize = 0 }, "--chunk-size"},
		{"no sentinel", func(c *Config) { c.Sentinel = "" }, "--quit-command"},
		{"negative timeout", func(c *Config) { c.Timeout = -1 }, "--timeout"},
		{"tunnel without host", func(c *Config) { c.TunnelEnabled = true }, "hint:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantErr)
			}
			var ce *ncerr.ConfigError
			if !ncerr.As(err, &ce) {
				t.Errorf("error should be a *ConfigError, got %T", err)
			}
		})
	}
}
