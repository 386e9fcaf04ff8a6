package cmd

import (
	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "List the chunks of an image",
	Long: `List every chunk of a PNG image up to IEND with its offset, length,
stored checksum and whether that checksum matches.

Example:
  charcard inspect aria_card.png
  charcard inspect aria_card.png -o json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")

		data, err := readImage(args[0])
		if err != nil {
			return err
		}

		chunks, err := cardCodec().Inspect(data)
		if err != nil {
			return err
		}
		logger.WithField("file", args[0]).WithField("chunks", len(chunks)).Debug("image inspected")

		rows := chunkRows(chunks)
		if format == formatTable {
			return outputChunksTable(cmd.OutOrStdout(), rows)
		}
		return writeStructured(cmd.OutOrStdout(), format, rows)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringP("output", "o", formatTable, "Output format (table, json, yaml)")
}
