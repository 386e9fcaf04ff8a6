/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/charcard/pkg/config"
)

// upCmd represents the up command
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Bootstrap and start the charcard server",
	Long: `Bootstrap charcard by creating a configuration file with a generated API
key if none exists, then start the REST API server.

Examples:
  charcard up
  charcard up --port 9000 --print-keys
  charcard up --config ./charcard.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		printKeys, _ := cmd.Flags().GetBool("print-keys")

		if config.ConfigExists(configPath) {
			cmd.Printf("✅ Loaded existing configuration from %s\n", configPath)
		} else {
			cmd.Printf("🔧 First run detected. Bootstrapping charcard...\n")

			created, err := config.BootstrapConfig(configPath)
			if err != nil {
				return fmt.Errorf("error bootstrapping config: %w", err)
			}
			if err := config.ApplyEnv(created); err != nil {
				return err
			}
			created.Logging = cfg.Logging
			cfg = created

			cmd.Printf("✅ Configuration created at %s\n", configPath)
			if printKeys {
				cmd.Printf("\n🔑 API Key: %s\n", cfg.Server.APIKey)
				cmd.Printf("\n⚠️  Store this key securely! It is also saved in %s\n", configPath)
			}
		}

		serverConfig := serverConfigFrom(cmd, cfg)
		cmd.Printf("🚀 Starting charcard server on %s:%d\n", serverConfig.Bind, serverConfig.Port)
		return runServer(cmd, serverConfig)
	},
}

func init() {
	rootCmd.AddCommand(upCmd)

	upCmd.Flags().IntP("port", "p", 9300, "Port to listen on")
	upCmd.Flags().String("bind", "127.0.0.1", "Address to bind server to")
	upCmd.Flags().Bool("print-keys", false, "Print the generated API key to console")
}
