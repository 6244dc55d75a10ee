package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"manualrag/src/core/manual"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the parsed manual index as JSON",
	Long: `The inspect command parses the manual, joins it with the page metadata
and prints every indexed item with its page and bounding box. Use it to check
that parsed items and metadata pages line up.`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	fs, err := newFileStore()
	if err != nil {
		return err
	}

	index := manual.BuildIndex(cmd.Context(), fs, viper.GetString("manual.path"), viper.GetString("metadata.path"))

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(index)
}
