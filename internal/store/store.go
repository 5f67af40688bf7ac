// Package store persists completed assessments so past runs can be listed
// and reviewed.
package store

import (
	"context"
	"time"

	"github.com/Vkdel001/underwriter/internal/cra"
)

// Assessment is a persisted assessment run: the transcribed inputs, the
// mapped worksheet, the CRA result and the generated reports.
type Assessment struct {
	ID            string                 `json:"id"`
	ProposalFile  string                 `json:"proposal_file"`
	ECMFile       string                 `json:"ecm_file"`
	MappedData    string                 `json:"mapped_data"`
	CRA           *cra.Result            `json:"cra,omitempty"`
	CRAFailed     bool                   `json:"cra_failed"`
	RiskLevel     cra.RiskLevel          `json:"risk_level"`
	WeightedScore float64                `json:"weighted_score"`
	Verification  cra.ManualVerification `json:"verification"`
	Report        string                 `json:"report"`
	Summary       string                 `json:"summary,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

// Filter specifies criteria for listing assessments.
type Filter struct {
	RiskLevel cra.RiskLevel `json:"risk_level,omitempty"`
	Limit     int           `json:"limit,omitempty"`
	Offset    int           `json:"offset,omitempty"`
}

// Store defines the persistence interface for assessments.
type Store interface {
	CreateAssessment(ctx context.Context, a *Assessment) error
	GetAssessment(ctx context.Context, id string) (*Assessment, error)
	ListAssessments(ctx context.Context, filter Filter) ([]Assessment, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
