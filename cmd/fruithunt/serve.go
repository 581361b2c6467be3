package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-hunt/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Fruit Hunt SSH server",
	Long: `Start an SSH server that allows players to connect and play.

Each SSH user name is its own progress profile, so two players never share
a collection. Connecting without a user name plays as "guest".

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses ssh.host_key from the config, generated on first start

Examples:
  fruithunt serve                           # Listen on the configured address
  fruithunt serve --ssh :2222               # Listen on port 2222
  fruithunt serve --host-key ./my_host_key  # Use specific host key
  fruithunt serve --db ./progress.db        # Use specific database

Players can connect with:
  ssh maya@localhost -p 2323`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting, e.g. 15m (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	a := mustOpenApp(cmd)
	defer a.Close()

	sshCfg := a.cfg.SSH
	if cmd.Flags().Changed("ssh") {
		sshCfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		sshCfg.HostKey = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		sshCfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfigFrom(sshCfg), a.deps())
	if err != nil {
		a.Close()
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Fruit Hunt SSH server on %s\n", server.Addr())
	fmt.Println("Connect with: ssh <name>@localhost -p <port>")
	fmt.Println("Press Ctrl+C to stop")

	ctx := cmd.Context()
	if err := server.ListenAndServe(ctx); err != nil {
		a.Close()
		fail("server: %v", err)
	}
}
