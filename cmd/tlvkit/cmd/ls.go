package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List stored buffers",
	Long: `List the ids of all stored buffers.

Example:
  tlvkit ls`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		bufferStore, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		ids, err := bufferStore.List()
		if err != nil {
			fmt.Printf("Error listing buffers: %v\n", err)
			return
		}

		for _, id := range ids {
			fmt.Println(id)
		}
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
