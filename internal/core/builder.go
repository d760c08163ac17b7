package core

import (
	"github.com/redar98/PAD/config"
	"github.com/redar98/PAD/internal/metrics"
	"github.com/redar98/PAD/internal/relay"
	"github.com/redar98/PAD/internal/transport"
	"github.com/redar98/PAD/util"
)

// Build validates cfg and constructs the client Mode from it.
func Build(cfg *config.Config, logger *util.Logger) (Mode, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &ConnectMode{
		Dialer: buildDialer(cfg, logger),
		Relay: &relay.Relay{
			ChunkSize: cfg.ChunkSize,
			Sentinel:  cfg.Sentinel,
			Logger:    logger,
		},
		Host:    cfg.Host,
		Port:    cfg.Port,
		Logger:  logger,
		Metrics: metrics.New(),
		Stats:   cfg.Stats,
	}, nil
}

// buildDialer creates the right transport.Dialer for the given config.
func buildDialer(cfg *config.Config, logger *util.Logger) transport.Dialer {
	if cfg.TunnelEnabled {
		return transport.NewSSHDialer(&transport.SSHConfig{
			User:          cfg.TunnelUser,
			Host:          cfg.TunnelHost,
			Port:          cfg.TunnelPort,
			KeyPath:       cfg.SSHKeyPath,
			PromptPass:    cfg.SSHPassword,
			UseAgent:      cfg.UseSSHAgent,
			StrictHostKey: cfg.StrictHostKey,
			KnownHosts:    cfg.KnownHostsPath,
			ConnTimeout:   cfg.Timeout,
		}, logger)
	}
	return &transport.TCPDialer{Timeout: cfg.Timeout, KeepAlive: cfg.KeepAlive}
}
