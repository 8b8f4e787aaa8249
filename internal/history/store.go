// Package history implements the persistent decision log for compass.
//
// It uses SQLite to record every classification a user opted to keep,
// and computes aggregate statistics over them. Recording is strictly
// opt-in: the classifier itself stays a pure function.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Decision is one recorded classification.
type Decision struct {
	ID                      string  `json:"id"`
	TaskText                string  `json:"task_text"`
	Workflow                string  `json:"workflow"`
	Confidence              float64 `json:"confidence"`
	Reasoning               string  `json:"reasoning"`
	SecurityScanRecommended bool    `json:"security_scan_recommended"`
	ContextTokenCount       int     `json:"context_token_count"`
	LoadedFileCount         int     `json:"loaded_file_count"`
	CreatedAt               string  `json:"created_at"`
}

// RecordParams holds the input for recording a decision.
type RecordParams struct {
	TaskText                string
	Workflow                string
	Confidence              float64
	Reasoning               string
	SecurityScanRecommended bool
	ContextTokenCount       int
	LoadedFileCount         int
}

// WorkflowCount pairs a workflow name with how often it was chosen.
type WorkflowCount struct {
	Workflow string `json:"workflow"`
	Count    int    `json:"count"`
}

// Stats holds aggregate statistics over all recorded decisions.
type Stats struct {
	TotalDecisions   int             `json:"total_decisions"`
	ByWorkflow       []WorkflowCount `json:"by_workflow"`
	AvgConfidence    float64         `json:"avg_confidence"`
	SecurityScanRate float64         `json:"security_scan_rate"`
	FirstRecordedAt  string          `json:"first_recorded_at,omitempty"`
	LastRecordedAt   string          `json:"last_recorded_at,omitempty"`
}

// Config holds history store configuration.
type Config struct {
	DataDir string
}

// DefaultConfig returns the default store location.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{DataDir: filepath.Join(home, ".compass")}
}

// Store is the decision log backed by SQLite.
type Store struct {
	db  *sql.DB
	cfg Config
}

// New creates a new Store with the given configuration.
// It creates the data directory if needed, opens SQLite with WAL mode,
// and runs migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("history: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "history.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("history: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("history: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS decisions (
			id              TEXT PRIMARY KEY,
			task_text       TEXT NOT NULL,
			workflow        TEXT NOT NULL,
			confidence      REAL NOT NULL,
			reasoning       TEXT NOT NULL,
			security_scan   INTEGER NOT NULL DEFAULT 0,
			context_tokens  INTEGER NOT NULL DEFAULT 0,
			loaded_files    INTEGER NOT NULL DEFAULT 0,
			created_at      TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_decisions_created_at ON decisions(created_at);
		CREATE INDEX IF NOT EXISTS idx_decisions_workflow   ON decisions(workflow);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores one decision and returns it with its generated ID and
// timestamp.
func (s *Store) Record(p RecordParams) (*Decision, error) {
	d := &Decision{
		ID:                      uuid.NewString(),
		TaskText:                p.TaskText,
		Workflow:                p.Workflow,
		Confidence:              p.Confidence,
		Reasoning:               p.Reasoning,
		SecurityScanRecommended: p.SecurityScanRecommended,
		ContextTokenCount:       p.ContextTokenCount,
		LoadedFileCount:         p.LoadedFileCount,
		CreatedAt:               time.Now().UTC().Format(time.RFC3339),
	}

	_, err := s.db.Exec(`
		INSERT INTO decisions
			(id, task_text, workflow, confidence, reasoning, security_scan, context_tokens, loaded_files, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.TaskText, d.Workflow, d.Confidence, d.Reasoning,
		boolToInt(d.SecurityScanRecommended), d.ContextTokenCount, d.LoadedFileCount, d.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("history: record decision: %w", err)
	}
	return d, nil
}

// Recent returns the most recently recorded decisions, newest first.
// A non-positive limit defaults to 20.
func (s *Store) Recent(limit int) ([]Decision, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, task_text, workflow, confidence, reasoning, security_scan, context_tokens, loaded_files, created_at
		FROM decisions
		ORDER BY created_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: list decisions: %w", err)
	}
	defer rows.Close()

	var out []Decision
	for rows.Next() {
		var d Decision
		var scan int
		if err := rows.Scan(&d.ID, &d.TaskText, &d.Workflow, &d.Confidence, &d.Reasoning,
			&scan, &d.ContextTokenCount, &d.LoadedFileCount, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: scan decision: %w", err)
		}
		d.SecurityScanRecommended = scan != 0
		out = append(out, d)
	}
	return out, rows.Err()
}

// Stats computes aggregate statistics over all recorded decisions.
func (s *Store) Stats() (*Stats, error) {
	st := &Stats{}

	var avg, scanRate sql.NullFloat64
	var first, last sql.NullString
	err := s.db.QueryRow(`
		SELECT COUNT(*), AVG(confidence), AVG(security_scan), MIN(created_at), MAX(created_at)
		FROM decisions`).Scan(&st.TotalDecisions, &avg, &scanRate, &first, &last)
	if err != nil {
		return nil, fmt.Errorf("history: aggregate stats: %w", err)
	}
	st.AvgConfidence = avg.Float64
	st.SecurityScanRate = scanRate.Float64
	st.FirstRecordedAt = first.String
	st.LastRecordedAt = last.String

	rows, err := s.db.Query(`
		SELECT workflow, COUNT(*) AS n
		FROM decisions
		GROUP BY workflow
		ORDER BY n DESC, workflow`)
	if err != nil {
		return nil, fmt.Errorf("history: workflow counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var wc WorkflowCount
		if err := rows.Scan(&wc.Workflow, &wc.Count); err != nil {
			return nil, fmt.Errorf("history: scan workflow count: %w", err)
		}
		st.ByWorkflow = append(st.ByWorkflow, wc)
	}
	return st, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
