/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avelis/blaze64/pkg/codec"
	"github.com/avelis/blaze64/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blaze64",
	Short: "Blaze64 - Adaptive parallel Base64 codec",
	Long: `Blaze64 encodes and decodes standard Base64, picking a sequential,
chunked, or pipelined strategy based on input size.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		cfg := config.DefaultConfig()
		if config.ConfigExists(configPath) {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		}

		c, err := codec.New(cfg.CodecConfig())
		if err != nil {
			return fmt.Errorf("failed to build codec: %w", err)
		}

		// Store in command context
		ctx := context.WithValue(cmd.Context(), "codec", c)
		ctx = context.WithValue(ctx, "config", cfg)
		cmd.SetContext(ctx)
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
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file path (default ~/.config/blaze64/config.yaml)")
}

// codecFromContext retrieves the codec built by PersistentPreRunE.
func codecFromContext(cmd *cobra.Command) (*codec.Codec, bool) {
	c, ok := cmd.Context().Value("codec").(*codec.Codec)
	return c, ok
}

// configFromContext retrieves the loaded configuration.
func configFromContext(cmd *cobra.Command) (*config.Config, bool) {
	cfg, ok := cmd.Context().Value("config").(*config.Config)
	return cfg, ok
}
