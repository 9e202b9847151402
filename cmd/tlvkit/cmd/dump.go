package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emvkit/tlvkit/pkg/tlvbuf"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump [id]",
	Short: "Print a buffer's records",
	Long: `Print every record in a buffer, one per line, indenting the
contents of constructed records. With --file, a raw record file is
dumped instead of a stored buffer.

Example:
  tlvkit dump 2a4f1c
  tlvkit dump --file records.bin`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")

		if file != "" {
			data, err := os.ReadFile(file)
			if err != nil {
				fmt.Printf("Error reading file: %v\n", err)
				return
			}
			buf, err := tlvbuf.BindRecords(data, len(data))
			if err != nil {
				fmt.Printf("Error: %s does not hold a valid record sequence\n", file)
				return
			}
			buf.Dump(os.Stdout)
			return
		}

		if len(args) != 1 {
			fmt.Printf("Error: a buffer id or --file is required\n")
			return
		}

		bufferStore, ok := storeFromContext(cmd)
		if !ok {
			fmt.Printf("Error: store not found in context\n")
			return
		}

		buf, err := bufferStore.Get(args[0])
		if err != nil {
			fmt.Printf("Error getting buffer: %v\n", err)
			return
		}

		buf.Dump(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringP("file", "f", "", "Dump a raw record file instead of a stored buffer")
}
