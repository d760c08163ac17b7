// Package cmd wires up the CLI flags and runs the client.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/redar98/PAD/config"
	"github.com/redar98/PAD/internal/core"
	"github.com/redar98/PAD/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X github.com/redar98/PAD/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the client.
func Execute(ctx context.Context, args []string) error {
	return execute(ctx, args, os.Stdout, os.Stderr)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg := config.Default()
	config.LoadFromEnv(cfg)

	fs := flag.NewFlagSet("pubsubc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// ── connection ───────────────────────────────────────────────
	fs.StringVarP(&cfg.Host, "host", "H", cfg.Host, "Server host")
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "Server port")

	timeoutSec := int(cfg.Timeout / time.Second)
	fs.IntVarP(&timeoutSec, "timeout", "w", timeoutSec, "Connect timeout in seconds (0 = OS default)")

	keepAliveSec := int(cfg.KeepAlive / time.Second)
	fs.IntVar(&keepAliveSec, "keepalive", keepAliveSec, "TCP keep-alive period in seconds (0 = Go default, -1 = off)")

	// ── relay ────────────────────────────────────────────────────
	fs.IntVar(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "Maximum bytes printed per server read")
	fs.StringVar(&cfg.Sentinel, "quit-command", cfg.Sentinel, "Console line that ends the session (any case)")

	// ── SSH tunnel ───────────────────────────────────────────────
	fs.StringVarP(&cfg.TunnelSpec, "tunnel", "T", cfg.TunnelSpec, "Reach the server through SSH gateway [user@]host[:port]")
	fs.StringVar(&cfg.SSHKeyPath, "ssh-key", cfg.SSHKeyPath, "SSH private key file")
	fs.BoolVar(&cfg.SSHPassword, "ssh-password", cfg.SSHPassword, "Prompt for SSH password")
	fs.BoolVar(&cfg.UseSSHAgent, "ssh-agent", cfg.UseSSHAgent, "Use SSH agent")
	fs.BoolVar(&cfg.StrictHostKey, "strict-hostkey", cfg.StrictHostKey, "Verify SSH host keys")
	fs.StringVar(&cfg.KnownHostsPath, "known-hosts", cfg.KnownHostsPath, "Custom known_hosts path")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVar(&cfg.Stats, "stats", false, "Print session statistics as JSON on exit")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Validate configuration and exit")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(stderr, fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(stderr, fs)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "pubsubc %s\n", version)
		return nil
	}

	cfg.Timeout = time.Duration(timeoutSec) * time.Second
	cfg.KeepAlive = time.Duration(keepAliveSec) * time.Second

	if err := parsePositional(cfg, fs.Args()); err != nil {
		return err
	}
	if err := cfg.ApplyTunnelSpec(); err != nil {
		return err
	}

	logger := util.NewLogger(cfg.Verbose)
	logger.SetOutput(stderr)

	mode, err := core.Build(cfg, logger)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		fmt.Fprintf(stdout, "configuration valid: server %s\n", cfg.Address())
		return nil
	}

	return mode.Run(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

// parsePositional accepts an optional [host [port]] after the flags.
func parsePositional(cfg *config.Config, remaining []string) error {
	switch len(remaining) {
	case 0:
	case 2:
		port, err := config.ParsePort(remaining[1])
		if err != nil {
			return fmt.Errorf("port: %w", err)
		}
		cfg.Port = port
		fallthrough
	case 1:
		cfg.Host = remaining[0]
	default:
		return fmt.Errorf("too many arguments (use --help for usage)")
	}
	return nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `pubsubc – pub/sub console client v%s

Sends each typed line to the server and prints whatever the server
sends back.  Type "quit" (any case) or end input to disconnect.

Usage:
  pubsubc [options] [host [port]]

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Environment:
  %[1]sHOST, %[1]sPORT, %[1]sTIMEOUT, %[1]sKEEPALIVE, %[1]sCHUNK_SIZE, %[1]sVERBOSE,
  %[1]sTUNNEL, %[1]sSSH_KEY, %[1]sSSH_PASSWORD, %[1]sSSH_AGENT,
  %[1]sSTRICT_HOSTKEY, %[1]sKNOWN_HOSTS

Examples:
  pubsubc                                   Connect to localhost:8787
  pubsubc broker.internal 9000              Connect to another server
  pubsubc -T ops@bastion broker.internal    Through an SSH gateway
  printf 'subscribe news\n' | pubsubc       Scripted session
`, config.EnvPrefix)
}
