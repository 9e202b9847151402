/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/emvkit/tlvkit/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize tlvkit configuration",
	Long: `Initialize the tlvkit configuration file for local development.

This command will:
- Create the configuration file with secure permissions
- Generate an API key for the REST server
- Record the data directory for buffer storage

Examples:
  tlvkit init
  tlvkit init --config ./tlvkit.yaml --data-dir ./data`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		dataDir, _ := cmd.Flags().GetString("data-dir")
		force, _ := cmd.Flags().GetBool("force")

		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(configPath) && !force {
			cmd.Printf("Configuration already exists at %s. Use --force to recreate.\n", configPath)
			return
		}

		cfg, err := config.BootstrapConfig(configPath, dataDir)
		if err != nil {
			cmd.Printf("Error creating configuration: %v\n", err)
			os.Exit(1)
		}

		cmd.Printf("Configuration written to %s\n", configPath)
		cmd.Printf("API key: %s\n", cfg.Security.APIKey)
		cmd.Printf("Data directory: %s\n", cfg.DataDir)
		cmd.Printf("\nYou can now start the server with:\n")
		cmd.Printf("  tlvkit serve --config %s\n", configPath)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("config", "", "Path to the configuration file")
	initCmd.Flags().Bool("force", false, "Recreate the configuration even if it already exists")
}
