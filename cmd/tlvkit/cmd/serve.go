/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/emvkit/tlvkit/pkg/api"
	"github.com/emvkit/tlvkit/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the tlvkit REST API server.

The server exposes buffer and record operations under /api/v1 and
Prometheus metrics at /metrics. Requests must carry the API key in
the X-API-Key header. Flags override values from the configuration
file.

Examples:
  tlvkit serve --config ~/.config/tlvkit/config.yaml
  tlvkit serve --api-key=mysecretkey --port=8080`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		port, _ := cmd.Flags().GetInt("port")
		bind, _ := cmd.Flags().GetString("bind")
		apiKey, _ := cmd.Flags().GetString("api-key")

		// Fill unset flags from the configuration file
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}
		if config.ConfigExists(configPath) {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				cmd.Printf("Error loading configuration: %v\n", err)
				return
			}
			if apiKey == "" {
				apiKey = cfg.Security.APIKey
			}
			if !cmd.Flags().Changed("port") {
				port = cfg.Port
			}
			if !cmd.Flags().Changed("bind") {
				bind = cfg.Bind
			}
		}

		if apiKey == "" {
			cmd.Println("Error: --api-key is required (or run 'tlvkit init' first)")
			return
		}

		bufferStore, ok := storeFromContext(cmd)
		if !ok {
			cmd.Println("Error: store not found in context")
			return
		}

		serverConfig := api.ServerConfig{
			Port:   port,
			Bind:   bind,
			APIKey: apiKey,
		}

		if err := api.StartServer(bufferStore, serverConfig); err != nil {
			cmd.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key for request authentication")
	serveCmd.Flags().String("config", "", "Path to the configuration file")
}
