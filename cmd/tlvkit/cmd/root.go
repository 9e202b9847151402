/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emvkit/tlvkit/pkg/store"
	"github.com/emvkit/tlvkit/pkg/tlv"
	"github.com/emvkit/tlvkit/pkg/tlvbuf"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tlvkit",
	Short: "tlvkit - BER-TLV record buffer toolkit",
	Long: `tlvkit stores and edits BER-TLV record buffers. Records are
addressed by tag identifier and buffers persist between invocations.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		capacity, _ := cmd.Flags().GetInt("capacity")
		bufferStore, err := store.NewBufferStore(store.Config{
			DataDir:  dataDir,
			Capacity: capacity,
		})
		if err != nil {
			return fmt.Errorf("failed to create store: %w", err)
		}
		if err := bufferStore.Open(); err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		// Store in command context
		cmd.SetContext(context.WithValue(cmd.Context(), "store", bufferStore))
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
	// Global data directory flag
	rootCmd.PersistentFlags().StringP("data-dir", "d", "./data", "Data directory for the store")
	rootCmd.PersistentFlags().Int("capacity", store.DefaultCapacity, "Capacity of newly created buffers")
}

// storeFromContext pulls the opened store out of the command context
func storeFromContext(cmd *cobra.Command) (*store.BufferStore, bool) {
	s, ok := cmd.Context().Value("store").(*store.BufferStore)
	return s, ok
}

// parseTag reads a hex tag identifier from a command argument
func parseTag(arg string) (tlv.Tag, error) {
	v, err := strconv.ParseUint(arg, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid tag %q: must be 1-4 hex digits", arg)
	}
	return tlv.Tag(v), nil
}

// parseOverwritePolicy maps a --policy flag value onto a policy
func parseOverwritePolicy(name string) (tlvbuf.OverwritePolicy, error) {
	switch name {
	case "", "reject":
		return tlvbuf.RejectDuplicate, nil
	case "overwrite":
		return tlvbuf.Overwrite, nil
	case "skip":
		return tlvbuf.SkipIfExists, nil
	case "append":
		return tlvbuf.AlwaysAppend, nil
	default:
		return 0, fmt.Errorf("unknown policy %q (reject, overwrite, skip, append)", name)
	}
}
