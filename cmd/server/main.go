package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/versten1uk/new-arch-spike/internal/infrastructure/config"
	"github.com/versten1uk/new-arch-spike/internal/infrastructure/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		port    string
		host    string
		dev     bool
		storage string
		lenient bool
	)

	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Capability interop host",
		Long:          "Binds the logger, storage, device info, calculator and web view modules into one registry and serves them over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("port") {
				cfg.Server.Port = port
			}
			if flags.Changed("host") {
				cfg.Server.Host = host
			}
			if flags.Changed("dev") {
				cfg.Logging.Development = dev
				if dev {
					cfg.Logging.Level = "debug"
				}
			}
			if flags.Changed("storage") {
				cfg.Storage.Path = storage
			}
			if flags.Changed("lenient") {
				cfg.Interop.Strict = !lenient
			}

			srv, err := server.NewServer(cfg)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			defer srv.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&port, "port", "8000", "Server port (overrides PORT)")
	flags.StringVar(&host, "host", "0.0.0.0", "Listen host (overrides HOST)")
	flags.BoolVar(&dev, "dev", false, "Development logging (console, debug level)")
	flags.StringVar(&storage, "storage", "", "Persist storage to this JSON file (overrides STORAGE_PATH)")
	flags.BoolVar(&lenient, "lenient", false, "Allow capability re-registration (last write wins)")

	cmd.AddCommand(newCapabilitiesCmd())
	cmd.SetContext(context.Background())
	return cmd
}
