package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emvkit/tlvkit/pkg/tlvbuf"
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge <dst-id> <src-id> <tags-hex>",
	Short: "Copy selected records between buffers",
	Long: `Copy the records named in a hex-encoded tag list from a source
buffer into a destination buffer. Records already present in the
destination are left untouched. Prints how many records were copied.

Example:
  tlvkit merge 2a4f1c 7be902 5A9F02`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		tagList, err := hex.DecodeString(args[2])
		if err != nil {
			fmt.Printf("Error: tag list must be hex: %v\n", err)
			return
		}

		bufferStore, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		dst, err := bufferStore.Get(args[0])
		if err != nil {
			fmt.Printf("Error getting destination buffer: %v\n", err)
			return
		}
		src, err := bufferStore.Get(args[1])
		if err != nil {
			fmt.Printf("Error getting source buffer: %v\n", err)
			return
		}

		added := tlvbuf.MergeTags(dst, src, tagList)
		if err := bufferStore.Put(args[0], dst); err != nil {
			fmt.Printf("Error saving buffer: %v\n", err)
			return
		}

		fmt.Printf("Copied %d records\n", added)
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
