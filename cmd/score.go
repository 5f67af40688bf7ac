package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Vkdel001/underwriter/internal/cra"
	"github.com/Vkdel001/underwriter/internal/store"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a mapped worksheet offline",
	Long:  "Runs the CRA scoring engine against an already-mapped worksheet text file. No API calls are made. Use --save to persist the result.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("score"); err != nil {
			return err
		}

		inputPath, _ := cmd.Flags().GetString("input")
		mapped, err := os.ReadFile(inputPath)
		if err != nil {
			return eris.Wrapf(err, "read input %s", inputPath)
		}

		mv, err := verificationFromFlags(cmd)
		if err != nil {
			return err
		}

		assessment := &store.Assessment{
			ProposalFile: inputPath,
			MappedData:   string(mapped),
			Verification: mv,
		}

		res, err := cra.Calculate(string(mapped), &mv)
		if err != nil {
			var scoreErr *cra.ScoringError
			if !errors.As(err, &scoreErr) {
				return err
			}
			assessment.CRAFailed = true
			assessment.RiskLevel = scoreErr.RiskLevel
			assessment.WeightedScore = scoreErr.WeightedScore
			assessment.Report = cra.FormatFailureSummary()
		} else {
			assessment.CRA = res
			assessment.RiskLevel = res.RiskLevel
			assessment.WeightedScore = res.WeightedScore
			assessment.Report = cra.FormatSummary(res, &mv)
		}

		fmt.Println(assessment.Report)

		if save, _ := cmd.Flags().GetBool("save"); save {
			st, err := initStore()
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck
			if err := st.Migrate(ctx); err != nil {
				return err
			}
			if err := st.CreateAssessment(ctx, assessment); err != nil {
				return err
			}
			fmt.Printf("\nSaved assessment %s\n", assessment.ID)
		}
		return nil
	},
}

func init() {
	scoreCmd.Flags().String("input", "", "path to the mapped worksheet text file (required)")
	_ = scoreCmd.MarkFlagRequired("input")
	scoreCmd.Flags().Bool("save", false, "persist the result to the assessment database")
	addVerificationFlags(scoreCmd)
	rootCmd.AddCommand(scoreCmd)
}
