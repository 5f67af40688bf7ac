// Package assess orchestrates the assessment workflow: transcribe the
// proposal and ECM PDFs, map them onto the underwriting worksheet, run the
// CRA scoring engine, draft the underwriter summary and persist the result.
package assess

import (
	"context"
	"errors"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Vkdel001/underwriter/internal/cra"
	"github.com/Vkdel001/underwriter/internal/prompt"
	"github.com/Vkdel001/underwriter/internal/store"
	"github.com/Vkdel001/underwriter/pkg/vision"
)

// Input is one assessment request: the two source PDFs and the reviewer's
// manual verification data.
type Input struct {
	ProposalPDF  []byte
	ProposalName string
	ECMPDF       []byte
	ECMName      string
	Verification cra.ManualVerification
}

// Assessor runs the end-to-end assessment workflow.
type Assessor struct {
	vision vision.Client
	store  store.Store
}

// New creates an Assessor. The store may be nil when persistence is not
// wanted.
func New(v vision.Client, s store.Store) *Assessor {
	return &Assessor{vision: v, store: s}
}

// Run executes the full workflow and returns the persisted assessment.
// A CRA scoring failure does not abort the run: the assessment is completed
// with the degraded fallback score and CRAFailed set.
func (a *Assessor) Run(ctx context.Context, in Input) (*store.Assessment, error) {
	if len(in.ProposalPDF) == 0 {
		return nil, eris.New("assess: no proposal pdf provided")
	}
	if len(in.ECMPDF) == 0 {
		return nil, eris.New("assess: no ecm pdf provided")
	}
	if in.Verification.ClaimsChecked() && *in.Verification.ClaimsAmount < 0 {
		return nil, eris.New("assess: claims amount cannot be negative")
	}

	zap.L().Info("starting assessment",
		zap.String("proposal", in.ProposalName),
		zap.String("ecm", in.ECMName),
	)

	// Transcribe both PDFs concurrently.
	var proposalText, ecmText string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := a.vision.TranscribePDF(gctx, in.ProposalPDF, prompt.Proposal())
		if err != nil {
			return eris.Wrap(err, "assess: transcribe proposal")
		}
		proposalText = text
		return nil
	})
	g.Go(func() error {
		text, err := a.vision.TranscribePDF(gctx, in.ECMPDF, prompt.ECMPortfolio())
		if err != nil {
			return eris.Wrap(err, "assess: transcribe ecm portfolio")
		}
		ecmText = text
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Map both transcriptions onto the worksheet fields.
	mapped, err := a.vision.Complete(ctx, prompt.WorksheetMapping(proposalText, ecmText, in.Verification))
	if err != nil {
		return nil, eris.Wrap(err, "assess: map worksheet")
	}

	assessment := &store.Assessment{
		ProposalFile: in.ProposalName,
		ECMFile:      in.ECMName,
		MappedData:   mapped,
		Verification: in.Verification,
	}

	// Score. A ScoringError carries the degraded fallback values.
	res, err := cra.Calculate(mapped, &in.Verification)
	if err != nil {
		var scoreErr *cra.ScoringError
		if !errors.As(err, &scoreErr) {
			return nil, eris.Wrap(err, "assess: calculate cra score")
		}
		zap.L().Warn("cra scoring failed, using fallback",
			zap.String("reason", scoreErr.Reason),
			zap.Float64("weighted_score", scoreErr.WeightedScore),
		)
		assessment.CRAFailed = true
		assessment.RiskLevel = scoreErr.RiskLevel
		assessment.WeightedScore = scoreErr.WeightedScore
		assessment.Report = cra.FormatFailureSummary()
	} else {
		assessment.CRA = res
		assessment.RiskLevel = res.RiskLevel
		assessment.WeightedScore = res.WeightedScore
		assessment.Report = cra.FormatSummary(res, &in.Verification)
		zap.L().Info("cra score calculated",
			zap.Int("total_score", res.TotalScore),
			zap.Float64("weighted_score", res.WeightedScore),
			zap.String("risk_level", string(res.RiskLevel)),
		)
	}

	// Draft the underwriter summary. The CRA report is final by the time it
	// reaches the model, even when scoring fell back.
	summary, err := a.vision.Complete(ctx, prompt.UnderwriterSummary(proposalText, ecmText, assessment.Report))
	if err != nil {
		return nil, eris.Wrap(err, "assess: draft underwriter summary")
	}
	assessment.Summary = summary

	if a.store != nil {
		if err := a.store.CreateAssessment(ctx, assessment); err != nil {
			return nil, eris.Wrap(err, "assess: persist assessment")
		}
		zap.L().Info("assessment persisted", zap.String("id", assessment.ID))
	}

	return assessment, nil
}
