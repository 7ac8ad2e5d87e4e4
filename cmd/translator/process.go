package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Affiliat0r/Vertaler/internal/services"
)

var processID string

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process every pending submission once, or a single one with --id",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		app, err := services.NewAppFromEnv(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		if processID != "" {
			res, err := app.Pipeline.ProcessByID(ctx, processID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s translated: %s\n", res.SubmissionID, res.URL)
			return nil
		}

		summary, err := app.Pipeline.ProcessPending(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "total=%d successful=%d failed=%d skipped=%d\n",
			summary.Total, summary.Successful, summary.Failed, summary.Skipped)
		if summary.Failed > 0 {
			return fmt.Errorf("%d submission(s) failed", summary.Failed)
		}
		return nil
	},
}

func init() {
	processCmd.Flags().StringVar(&processID, "id", "", "process only this submission")
	rootCmd.AddCommand(processCmd)
}
