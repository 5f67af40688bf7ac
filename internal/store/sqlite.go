package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/Vkdel001/underwriter/internal/cra"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS assessments (
	id             TEXT PRIMARY KEY,
	proposal_file  TEXT NOT NULL,
	ecm_file       TEXT NOT NULL,
	mapped_data    TEXT NOT NULL,
	cra            TEXT,
	cra_failed     INTEGER NOT NULL DEFAULT 0,
	risk_level     TEXT NOT NULL,
	weighted_score REAL NOT NULL,
	verification   TEXT NOT NULL,
	report         TEXT NOT NULL,
	summary        TEXT,
	created_at     DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_assessments_risk_level ON assessments(risk_level);
CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateAssessment inserts the assessment, filling in ID and CreatedAt.
func (s *SQLiteStore) CreateAssessment(ctx context.Context, a *Assessment) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	var craJSON sql.NullString
	if a.CRA != nil {
		b, err := json.Marshal(a.CRA)
		if err != nil {
			return eris.Wrap(err, "sqlite: marshal cra result")
		}
		craJSON = sql.NullString{String: string(b), Valid: true}
	}

	mvJSON, err := json.Marshal(a.Verification)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal verification")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO assessments
		 (id, proposal_file, ecm_file, mapped_data, cra, cra_failed, risk_level, weighted_score, verification, report, summary, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.ProposalFile, a.ECMFile, a.MappedData, craJSON, a.CRAFailed,
		string(a.RiskLevel), a.WeightedScore, string(mvJSON), a.Report, a.Summary, a.CreatedAt,
	)
	return eris.Wrap(err, "sqlite: insert assessment")
}

func (s *SQLiteStore) GetAssessment(ctx context.Context, id string) (*Assessment, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, proposal_file, ecm_file, mapped_data, cra, cra_failed, risk_level, weighted_score, verification, report, summary, created_at
		 FROM assessments WHERE id = ?`,
		id,
	)
	return scanAssessment(row)
}

func (s *SQLiteStore) ListAssessments(ctx context.Context, filter Filter) ([]Assessment, error) {
	query := `SELECT id, proposal_file, ecm_file, mapped_data, cra, cra_failed, risk_level, weighted_score, verification, report, summary, created_at
	 FROM assessments WHERE 1=1`
	var args []any

	if filter.RiskLevel != "" {
		query += ` AND risk_level = ?`
		args = append(args, string(filter.RiskLevel))
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list assessments")
	}
	defer rows.Close()

	var out []Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list assessments iterate")
}

// helpers

type scannable interface {
	Scan(dest ...any) error
}

func scanAssessment(row scannable) (*Assessment, error) {
	var a Assessment
	var craJSON, summary sql.NullString
	var riskLevel, mvJSON string

	err := row.Scan(&a.ID, &a.ProposalFile, &a.ECMFile, &a.MappedData, &craJSON,
		&a.CRAFailed, &riskLevel, &a.WeightedScore, &mvJSON, &a.Report, &summary, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.New("assessment not found")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan assessment")
	}

	a.RiskLevel = cra.RiskLevel(riskLevel)
	if craJSON.Valid {
		a.CRA = &cra.Result{}
		if err := json.Unmarshal([]byte(craJSON.String), a.CRA); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal cra result")
		}
	}
	if err := json.Unmarshal([]byte(mvJSON), &a.Verification); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal verification")
	}
	if summary.Valid {
		a.Summary = summary.String
	}
	return &a, nil
}
