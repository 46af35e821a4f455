package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wheel/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the wheel SSH server",
	Long: `Start an SSH server that gives every connection its own wheel.

Sessions never share state: one user's eliminations do not touch another's.
Screenshots are disabled for remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wheel/host_key

Examples:
  wheel serve                           # Listen on :23234 with auto-generated key
  wheel serve --ssh :2222               # Listen on port 2222
  wheel serve --mode elimination        # Every session plays a tournament
  wheel serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger("wheel-ssh")

	wcfg, err := loadConfig(logger)
	if err != nil {
		fatal("%v", err)
	}
	rt := runtimeConfig()
	factory := wheelFactory(wcfg, rt, logger)

	// Fail before listening if the configured wheel cannot be built.
	if _, err := factory(); err != nil {
		fatal("%v", err)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Logger = logger
	cfg.Session = tui.Options{
		TickRate: rt.TickRate,
		Layout:   wcfg.Render.CompactLayout(),
	}

	server, err := tui.NewSSHServer(cfg, factory)
	if err != nil {
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting wheel SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatal("server: %v", err)
	}
}
