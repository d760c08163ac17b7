package transport

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/redar98/PAD/config"
	ncerr "github.com/redar98/PAD/internal/errors"
	"github.com/redar98/PAD/util"
)

// SSHConfig holds everything needed to reach an SSH gateway.
type SSHConfig struct {
	User          string
	Host          string
	Port          int
	KeyPath       string
	PromptPass    bool
	UseAgent      bool
	StrictHostKey bool
	KnownHosts    string
	ConnTimeout   time.Duration
}

// SSHDialer routes the TCP stream through an SSH gateway using
// direct-tcpip forwarding.  The gateway connection is established
// lazily on the first Dial and torn down on Close.
type SSHDialer struct {
	config *SSHConfig
	logger *util.Logger

	mu     sync.Mutex
	client *ssh.Client
}

// NewSSHDialer creates a dialer that forwards connections through an
// SSH gateway.  Nothing is dialled until the first Dial.
func NewSSHDialer(cfg *SSHConfig, logger *util.Logger) *SSHDialer {
	if cfg.Port == 0 {
		cfg.Port = config.DefaultSSHPort
	}
	if cfg.ConnTimeout == 0 {
		cfg.ConnTimeout = config.DefaultSSHConnTimeout
	}
	return &SSHDialer{config: cfg, logger: logger}
}

// connect returns the gateway client, dialling it on first use.
func (d *SSHDialer) connect(ctx context.Context) (*ssh.Client, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.client != nil {
		return d.client, nil
	}

	host, port := d.config.Host, d.config.Port

	authMethods, err := BuildAuthMethods(d.config)
	if err != nil {
		return nil, ncerr.WrapSSH("auth", host, port, err)
	}
	hkCallback, err := hostKeyCallback(d.config)
	if err != nil {
		return nil, ncerr.WrapSSH("hostkey", host, port, err)
	}

	sshCfg := &ssh.ClientConfig{
		User:            d.config.User,
		Auth:            authMethods,
		HostKeyCallback: hkCallback,
		Timeout:         d.config.ConnTimeout,
	}

	addr := util.FormatAddr(host, port)
	d.logger.Verbose("establishing SSH tunnel to %s@%s", d.config.User, addr)

	// Context-aware TCP dial so callers can cancel.
	dialer := net.Dialer{Timeout: d.config.ConnTimeout}
	tcpConn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, ncerr.WrapSSH("dial", host, port, err)
	}

	// NewClientConn has no timeout of its own.
	tcpConn.SetDeadline(time.Now().Add(d.config.ConnTimeout)) //nolint:errcheck
	sshConn, chans, reqs, err := ssh.NewClientConn(tcpConn, addr, sshCfg)
	if err != nil {
		tcpConn.Close()
		if strings.Contains(err.Error(), "unable to authenticate") {
			err = fmt.Errorf("%w: %v", ncerr.ErrAuthFailed, err)
		}
		return nil, ncerr.WrapSSH("handshake", host, port, err)
	}
	tcpConn.SetDeadline(time.Time{}) //nolint:errcheck

	d.client = ssh.NewClient(sshConn, chans, reqs)
	d.logger.Verbose("SSH tunnel established")
	return d.client, nil
}

// Dial opens a TCP stream to address through the gateway.
func (d *SSHDialer) Dial(ctx context.Context, address string) (net.Conn, error) {
	client, err := d.connect(ctx)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("tunnel: dialing %s", address)
	conn, err := client.Dial("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("tunnel dial %s: %w", address, err)
	}
	return conn, nil
}

// Close shuts down the gateway connection.
func (d *SSHDialer) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.client == nil {
		return nil
	}
	err := d.client.Close()
	d.client = nil
	return err
}
