package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create [records-hex]",
	Short: "Create a new buffer",
	Long: `Create a new record buffer, optionally seeded with a hex-encoded
record sequence. Prints the id of the new buffer.

Example:
  tlvkit create
  tlvkit create 5A03414243`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var records []byte
		if len(args) == 1 {
			var err error
			records, err = hex.DecodeString(args[0])
			if err != nil {
				fmt.Printf("Error: records must be hex: %v\n", err)
				return
			}
		}

		// Get store from context
		bufferStore, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		id, err := bufferStore.Create(records)
		if err != nil {
			fmt.Printf("Error creating buffer: %v\n", err)
			return
		}

		fmt.Printf("%s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
