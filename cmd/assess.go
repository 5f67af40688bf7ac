package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Vkdel001/underwriter/internal/assess"
	"github.com/Vkdel001/underwriter/pkg/vision"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run a full assessment from proposal and ECM PDFs",
	Long:  "Transcribes both PDFs, maps them onto the underwriting worksheet, scores customer risk and drafts the underwriter summary. The result is saved to the assessment database.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("assess"); err != nil {
			return err
		}

		proposalPath, _ := cmd.Flags().GetString("proposal")
		ecmPath, _ := cmd.Flags().GetString("ecm")

		proposalPDF, err := os.ReadFile(proposalPath)
		if err != nil {
			return eris.Wrapf(err, "read proposal %s", proposalPath)
		}
		ecmPDF, err := os.ReadFile(ecmPath)
		if err != nil {
			return eris.Wrapf(err, "read ecm %s", ecmPath)
		}

		mv, err := verificationFromFlags(cmd)
		if err != nil {
			return err
		}

		client := vision.NewClient(cfg.Anthropic.Key,
			vision.WithModel(cfg.Anthropic.Model),
			vision.WithMaxTokens(cfg.Anthropic.MaxTokens),
			vision.WithMaxAttempts(cfg.Anthropic.MaxAttempts),
		)

		st, err := initStore()
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		assessor := assess.New(client, st)
		result, err := assessor.Run(ctx, assess.Input{
			ProposalPDF:  proposalPDF,
			ProposalName: filepath.Base(proposalPath),
			ECMPDF:       ecmPDF,
			ECMName:      filepath.Base(ecmPath),
			Verification: mv,
		})
		if err != nil {
			return err
		}

		fmt.Println(result.Report)
		fmt.Println()
		fmt.Println(result.Summary)
		fmt.Printf("\nSaved assessment %s\n", result.ID)
		return nil
	},
}

func init() {
	assessCmd.Flags().String("proposal", "", "path to the proposal form PDF (required)")
	assessCmd.Flags().String("ecm", "", "path to the ECM portfolio report PDF (required)")
	_ = assessCmd.MarkFlagRequired("proposal")
	_ = assessCmd.MarkFlagRequired("ecm")
	addVerificationFlags(assessCmd)
	rootCmd.AddCommand(assessCmd)
}
