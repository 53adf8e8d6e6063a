/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/avelis/blaze64/pkg/api"
	"github.com/avelis/blaze64/pkg/config"
	"github.com/avelis/blaze64/pkg/jobs"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the Blaze64 REST API server with authentication and Prometheus
metrics. File operations are recorded in a job store under the data
directory.

If no config file exists yet, one is bootstrapped with a generated API key.

Examples:
  blaze64 serve
  blaze64 serve --port=9090 --api-key=mysecretkey`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		bind, _ := cmd.Flags().GetString("bind")
		apiKey, _ := cmd.Flags().GetString("api-key")

		c, ok := codecFromContext(cmd)
		if !ok {
			cmd.Println("Error: codec not found in context")
			return
		}
		cfg, ok := configFromContext(cmd)
		if !ok {
			cmd.Println("Error: config not found in context")
			return
		}

		// A bootstrapped config carries a generated key; "auto" means the
		// defaults were never persisted.
		if apiKey == "" {
			apiKey = cfg.Security.APIKey
		}
		if apiKey == "" || apiKey == "auto" {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				configPath = config.GetDefaultConfigPath()
			}
			bootstrapped, err := config.BootstrapConfig(configPath, cfg.DataDir)
			if err != nil {
				cmd.Printf("Error bootstrapping config: %v\n", err)
				return
			}
			apiKey = bootstrapped.Security.APIKey
			cmd.Printf("Bootstrapped config at %s\n", configPath)
			cmd.Printf("API key: %s\n", apiKey)
		}

		if port == 0 {
			port = cfg.Port
		}
		if bind == "" {
			bind = cfg.Bind
		}

		if err := os.MkdirAll(cfg.DataDir, 0o750); err != nil {
			cmd.Printf("Error creating data dir: %v\n", err)
			return
		}
		jobStore, err := jobs.Open(filepath.Join(cfg.DataDir, "jobs"))
		if err != nil {
			cmd.Printf("Error opening job store: %v\n", err)
			return
		}
		defer func() {
			if err := jobStore.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Error closing job store: %v\n", err)
			}
		}()

		serverConfig := api.ServerConfig{
			Port:   port,
			Bind:   bind,
			APIKey: apiKey,
		}

		if err := api.StartServer(c, jobStore, serverConfig); err != nil {
			cmd.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (default from config)")
	serveCmd.Flags().String("bind", "", "Address to bind to (default from config)")
	serveCmd.Flags().String("api-key", "", "API key for authentication (default from config)")
}
