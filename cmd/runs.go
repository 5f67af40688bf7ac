package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Vkdel001/underwriter/internal/cra"
	"github.com/Vkdel001/underwriter/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect assessment history",
	Long:  "Commands for listing and viewing past assessments.",
}

// -- runs list --

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past assessments",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("runs"); err != nil {
			return err
		}

		st, err := initStore()
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		riskLevel, _ := cmd.Flags().GetString("risk-level")
		limit, _ := cmd.Flags().GetInt("limit")

		assessments, err := st.ListAssessments(ctx, store.Filter{
			RiskLevel: cra.RiskLevel(riskLevel),
			Limit:     limit,
		})
		if err != nil {
			return eris.Wrap(err, "runs list")
		}

		if len(assessments) == 0 {
			fmt.Fprintln(os.Stderr, "No assessments found.")
			return nil
		}

		formatAssessmentList(os.Stdout, assessments)
		return nil
	},
}

// -- runs show --

var runsShowCmd = &cobra.Command{
	Use:   "show <assessment-id>",
	Short: "Show full details of an assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("runs"); err != nil {
			return err
		}

		st, err := initStore()
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		a, err := st.GetAssessment(ctx, args[0])
		if err != nil {
			return eris.Wrap(err, "runs show")
		}

		report, _ := cmd.Flags().GetBool("report")
		if report {
			fmt.Println(a.Report)
			return nil
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	},
}

func init() {
	runsListCmd.Flags().String("risk-level", "", "filter by risk level (L1-L5)")
	runsListCmd.Flags().Int("limit", 50, "max number of assessments to display")

	runsShowCmd.Flags().Bool("report", false, "print the formatted CRA report instead of JSON")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}

// formatAssessmentList writes a tabular list of assessments to w.
func formatAssessmentList(out io.Writer, assessments []store.Assessment) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tPROPOSAL\tRISK\tSCORE\tCRA\tCREATED")
	_, _ = fmt.Fprintln(w, "--\t--------\t----\t-----\t---\t-------")

	for _, a := range assessments {
		proposal := a.ProposalFile
		if len(proposal) > 30 {
			proposal = proposal[:27] + "..."
		}

		craStatus := "ok"
		if a.CRAFailed {
			craStatus = "failed"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\n",
			truncateID(a.ID),
			proposal,
			a.RiskLevel,
			a.WeightedScore,
			craStatus,
			a.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
