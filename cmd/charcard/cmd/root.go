/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ssargent/charcard/pkg/api"
	"github.com/ssargent/charcard/pkg/card"
	"github.com/ssargent/charcard/pkg/config"
	"github.com/ssargent/charcard/pkg/di"
)

var (
	container *di.Container
	cfg       = config.DefaultConfig()
	logger    = logrus.New()
)

// SetContainer sets the dependency injection container
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "charcard",
	Short: "charcard - character profiles in PNG images",
	Long: `charcard reads and writes chara_card_v2 character profiles embedded
in the tEXt chunks of PNG images.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cmd.Flags().Changed("log-level") {
			loaded.Logging.Level, _ = cmd.Flags().GetString("log-level")
		}

		logger.SetOutput(cmd.ErrOrStderr())
		if err := loaded.Logging.Apply(logger); err != nil {
			return err
		}

		cfg = loaded
		logger.WithField("config", configPath).Debug("configuration loaded")
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.GetDefaultConfigPath(), "Path to the configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")
}

// cardCodec returns the codec from the container, or a fresh one when no
// container has been set.
func cardCodec() api.ICardCodec {
	if container == nil || container.GetCardCodec() == nil {
		return card.NewCodec()
	}
	return container.GetCardCodec()
}
