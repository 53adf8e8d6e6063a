package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode data to Base64",
	Long: `Encode a file (or stdin) to standard Base64.

With both a file argument and --output, the data is streamed through the
codec in fixed blocks, so inputs larger than memory work. Otherwise the
input is read whole and encoded in one shot.

Examples:
  blaze64 encode input.bin
  blaze64 encode input.bin --output=input.b64
  cat input.bin | blaze64 encode --threads=4`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		threads, _ := cmd.Flags().GetInt("threads")

		c, ok := codecFromContext(cmd)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: codec not found in context\n")
			return
		}

		// Streaming path: file in, file out.
		if len(args) == 1 && output != "" {
			processed, err := c.EncodeFile(args[0], output)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding file: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Encoded %d bytes to %s\n", processed, output)
			return
		}

		data, err := readInput(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			os.Exit(1)
		}

		var encoded string
		if threads > 0 {
			encoded, err = c.EncodeWithThreads(data, threads)
		} else {
			encoded, err = c.Encode(data)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding: %v\n", err)
			os.Exit(1)
		}

		if err := writeOutput(output, []byte(encoded)); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	encodeCmd.Flags().IntP("threads", "t", 0, "Pin the thread count instead of size-based selection")
}

// readInput reads the whole input from the file argument or stdin.
func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

// writeOutput writes data to path, or stdout with a trailing newline when
// path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		fmt.Printf("%s\n", data)
		return nil
	}
	return os.WriteFile(path, data, 0o644)
}
