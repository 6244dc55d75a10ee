package cmd

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"manualrag/src/core/formatter"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Answer a single query and print the JSON response",
	Long: `The search command builds the index, answers one query the same way
POST /query does and prints the response. With --index it searches the parsed
figures and tables instead, like POST /search.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("index", false, "search the parsed index instead of the page metadata")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	useIndex, _ := cmd.Flags().GetBool("index")
	query := strings.Join(args, " ")

	svc, err := buildServices(ctx)
	if err != nil {
		return err
	}

	var out any
	if useIndex {
		res, err := svc.query.Search(ctx, query)
		if err != nil {
			return err
		}
		out = formatter.Index(res)
	} else {
		res, err := svc.query.Answer(ctx, query)
		if err != nil {
			return err
		}
		out = formatter.Candidates(res)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
