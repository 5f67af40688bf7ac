package main

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Vkdel001/underwriter/internal/cra"
)

// addVerificationFlags registers the manual verification flags shared by the
// assess and score commands.
func addVerificationFlags(cmd *cobra.Command) {
	cmd.Flags().String("pep-status", "", "PEP check outcome (yes/no); omit if the check was not done")
	cmd.Flags().String("pep-comments", "", "comments from the PEP check")
	cmd.Flags().Float64("claims-amount", 0, "total prior claims in MUR; omit if iGAS was not checked")
	cmd.Flags().String("claims-comments", "", "comments from the claims history check")
}

// verificationFromFlags builds the manual verification data from the flags.
// The claims amount distinguishes "not checked" (flag absent) from "checked,
// no claims" (explicit 0).
func verificationFromFlags(cmd *cobra.Command) (cra.ManualVerification, error) {
	var mv cra.ManualVerification

	pep, _ := cmd.Flags().GetString("pep-status")
	switch strings.ToLower(pep) {
	case "":
	case "yes":
		mv.PEPStatus = "Yes"
	case "no":
		mv.PEPStatus = "No"
	default:
		return mv, eris.Errorf("invalid --pep-status value %q: must be yes or no", pep)
	}
	mv.PEPComments, _ = cmd.Flags().GetString("pep-comments")

	if cmd.Flags().Changed("claims-amount") {
		amount, _ := cmd.Flags().GetFloat64("claims-amount")
		if amount < 0 {
			return mv, eris.New("claims amount cannot be negative")
		}
		mv.ClaimsAmount = &amount
	}
	mv.ClaimsComments, _ = cmd.Flags().GetString("claims-comments")

	return mv, nil
}
