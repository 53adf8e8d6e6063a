package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode Base64 data",
	Long: `Decode standard Base64 from a file (or stdin) back to raw bytes.

With both a file argument and --output, the data is streamed through the
codec in fixed blocks. Otherwise the input is read whole and decoded in
one shot.

Examples:
  blaze64 decode input.b64 --output=input.bin
  echo -n "Zm9vYmFy" | blaze64 decode`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		c, ok := codecFromContext(cmd)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: codec not found in context\n")
			return
		}

		// Streaming path: file in, file out.
		if len(args) == 1 && output != "" {
			processed, err := c.DecodeFile(args[0], output)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error decoding file: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Decoded %d bytes to %s\n", processed, output)
			return
		}

		data, err := readInput(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			os.Exit(1)
		}

		decoded, err := c.Decode(string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding: %v\n", err)
			os.Exit(1)
		}

		if output == "" {
			// Raw bytes, no trailing newline.
			if _, err := os.Stdout.Write(decoded); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
				os.Exit(1)
			}
			return
		}
		if err := os.WriteFile(output, decoded, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
}
