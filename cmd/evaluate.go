package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"manualrag/src/core/evaluation"
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Measure retrieval quality against labelled queries",
	Long: `The evaluate command reads a JSON lines file where each line is
{"query": "...", "expected_pages": [3], "path": "answer"|"search"} and reports
the hit rate and mean reciprocal rank of the expected pages.`,
	RunE: Evaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().StringP("evaluate", "e", "", "Evaluation JSON lines file path")
	evaluateCmd.MarkFlagRequired("evaluate")
	evaluateCmd.Flags().BoolP("verbose", "v", false, "print every query result")
}

func Evaluate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	evaluatePath, _ := cmd.Flags().GetString("evaluate")
	verbose, _ := cmd.Flags().GetBool("verbose")

	evalFile, err := os.Open(evaluatePath)
	if err != nil {
		return fmt.Errorf("failed to open evaluation file: %w", err)
	}
	defer evalFile.Close()

	cases, skipped, err := evaluation.ReadCases(evalFile)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No evaluations were processed")
		return nil
	}

	svc, err := buildServices(ctx)
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(len(cases)), "evaluating")
	report, err := evaluation.Run(ctx, svc.query, cases, func(evaluation.CaseResult) {
		bar.Add(1)
	})
	if err != nil {
		return err
	}
	bar.Finish()

	out := cmd.OutOrStdout()
	if verbose {
		for _, r := range report.Results {
			switch {
			case r.Err != nil:
				fmt.Fprintf(out, "ERROR %q: %v\n", r.Query, r.Err)
			case r.Hit():
				fmt.Fprintf(out, "HIT   %q rank=%d pages=%v\n", r.Query, r.Rank, r.ReturnedPages)
			default:
				fmt.Fprintf(out, "MISS  %q pages=%v\n", r.Query, r.ReturnedPages)
			}
		}
	}

	fmt.Fprintf(out, "Evaluation Results:\n")
	fmt.Fprintf(out, "Total evaluations: %d (skipped lines: %d, failed: %d)\n", report.Evaluated, skipped, report.Failed)
	fmt.Fprintf(out, "Hit rate: %.2f%%\n", report.HitRate*100)
	fmt.Fprintf(out, "Mean reciprocal rank: %.4f\n", report.MRR)
	return nil
}
