package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show codec configuration and detected parallelism",
	Long: `Show the codec's version, strategy thresholds, input limit, and the
parallelism detected on this machine.

Examples:
  blaze64 info
  blaze64 info --format=json
  blaze64 info --format=yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")

		c, ok := codecFromContext(cmd)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: codec not found in context\n")
			return
		}

		info := c.Info()

		switch format {
		case "json":
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error marshaling info: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("%s\n", data)
		case "yaml":
			data, err := yaml.Marshal(info)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error marshaling info: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("%s", data)
		case "text":
			fmt.Printf("Blaze64 %s\n", info.Version)
			fmt.Printf("  multithread threshold: %d bytes\n", info.MultithreadThreshold)
			fmt.Printf("  large threshold:       %d bytes\n", info.LargeThreshold)
			fmt.Printf("  min chunk size:        %d bytes\n", info.MinChunkSize)
			fmt.Printf("  pipeline chunk size:   %d bytes\n", info.PipelineChunkSize)
			fmt.Printf("  max threads:           %d\n", info.MaxThreads)
			fmt.Printf("  max input size:        %d bytes\n", info.MaxInputSize)
			fmt.Printf("  detected cpus:         %d\n", info.DetectedCPUs)
			fmt.Printf("  workers:               %d\n", info.Workers)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown format %q (want text, json, or yaml)\n", format)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringP("format", "f", "text", "Output format: text, json, or yaml")
}
