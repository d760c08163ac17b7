package core

import (
	"testing"
	"time"

	"github.com/redar98/PAD/config"
	ncerr "github.com/redar98/PAD/internal/errors"
	"github.com/redar98/PAD/internal/transport"
	"github.com/redar98/PAD/util"
)

// TestBuild_Default verifies Build produces a plain TCP ConnectMode.
func TestBuild_Default(t *testing.T) {
	cfg := config.Default()
	cfg.Timeout = 5 * time.Second
	cfg.KeepAlive = 45 * time.Second

	mode, err := Build(cfg, util.NewLogger(0))
	if err != nil {
		t.Fatal(err)
	}
	cm, ok := mode.(*ConnectMode)
	if !ok {
		t.Fatalf("expected *ConnectMode, got %T", mode)
	}
	if cm.Host != "localhost" || cm.Port != 8787 {
		t.Errorf("target = %s:%d", cm.Host, cm.Port)
	}
	d, ok := cm.Dialer.(*transport.TCPDialer)
	if !ok {
		t.Fatalf("expected *TCPDialer, got %T", cm.Dialer)
	}
	if d.Timeout != 5*time.Second {
		t.Errorf("dial timeout = %v", d.Timeout)
	}
	if d.KeepAlive != 45*time.Second {
		t.Errorf("keep-alive = %v", d.KeepAlive)
	}
	if cm.Relay.ChunkSize != config.DefaultChunkSize || cm.Relay.Sentinel != "quit" {
		t.Errorf("relay = %+v", cm.Relay)
	}
	if cm.Metrics == nil {
		t.Error("metrics collector should be set")
	}
}

// TestBuild_Tunnel verifies -T selects the SSH dialer.
func TestBuild_Tunnel(t *testing.T) {
	cfg := config.Default()
	cfg.TunnelSpec = "ops@bastion:2222"
	if err := cfg.ApplyTunnelSpec(); err != nil {
		t.Fatal(err)
	}

	mode, err := Build(cfg, util.NewLogger(0))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := mode.(*ConnectMode).Dialer.(*transport.SSHDialer); !ok {
		t.Errorf("expected *SSHDialer, got %T", mode.(*ConnectMode).Dialer)
	}
}

// TestBuild_Invalid verifies configuration errors surface from Build.
func TestBuild_Invalid(t *testing.T) {
	cfg := config.Default()
	cfg.Port = 0

	_, err := Build(cfg, util.NewLogger(0))
	var ce *ncerr.ConfigError
	if !ncerr.As(err, &ce) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
}
