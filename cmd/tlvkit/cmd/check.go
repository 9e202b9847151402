package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <id>",
	Short: "Check a buffer's record structure",
	Long: `Check that a buffer holds a well-formed record sequence,
descending into constructed records. Exits non-zero when the
buffer is malformed.

Example:
  tlvkit check 2a4f1c`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		bufferStore, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		buf, err := bufferStore.Get(args[0])
		if err != nil {
			fmt.Printf("Error getting buffer: %v\n", err)
			os.Exit(1)
		}

		if !buf.Valid() {
			fmt.Printf("Buffer %s is malformed\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Buffer %s is well-formed\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
