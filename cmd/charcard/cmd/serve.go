/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ssargent/charcard/pkg/api"
	"github.com/ssargent/charcard/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the charcard REST API server.

Settings come from the configuration file and CHARCARD_* environment
variables; flags override both.

Examples:
  charcard serve
  charcard serve --port=8080 --api-key=mysecretkey`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd, serverConfigFrom(cmd, cfg))
	},
}

// serverConfigFrom builds the API configuration from c, letting explicitly
// set --port, --bind and --api-key flags win.
func serverConfigFrom(cmd *cobra.Command, c *config.Config) api.ServerConfig {
	serverConfig := api.ServerConfig{
		Port:          c.Server.Port,
		Bind:          c.Server.Bind,
		APIKey:        c.Server.APIKey,
		MaxImageBytes: c.Limits.MaxImageBytes,
		Export:        c.Export.Options(),
	}
	if cmd.Flags().Changed("port") {
		serverConfig.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("bind") {
		serverConfig.Bind, _ = cmd.Flags().GetString("bind")
	}
	if cmd.Flags().Changed("api-key") {
		serverConfig.APIKey, _ = cmd.Flags().GetString("api-key")
	}
	return serverConfig
}

// runServer serves the API until SIGINT or SIGTERM
func runServer(cmd *cobra.Command, serverConfig api.ServerConfig) error {
	if container == nil {
		return fmt.Errorf("dependency container not initialized")
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	starter := container.GetServerFactory().CreateServerStarter()
	if err := starter.StartServer(ctx, cardCodec(), serverConfig, logger); err != nil {
		return fmt.Errorf("error starting server: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 9300, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind")
	serveCmd.Flags().String("api-key", "", "API key for request authentication")
}
