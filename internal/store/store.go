package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/valpere/bedrocktran/internal"
	"github.com/valpere/bedrocktran/internal/translator"
)

type Store struct {
	db *sql.DB
}

// New opens the history database at dbPath. Writers are serialized on a
// single connection; concurrent callers wait instead of failing with
// SQLITE_BUSY.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS invocations (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		model_id TEXT NOT NULL,
		source_lang TEXT,
		target_lang TEXT,
		input_text TEXT NOT NULL,
		translated_text TEXT,
		output_text TEXT NOT NULL,
		latency_ms INTEGER,
		error TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_invocations_kind ON invocations(kind, created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveInvocation stores rec. An empty ID is replaced with a new UUID and a
// zero Timestamp with the current time; the stored ID is returned.
func (s *Store) SaveInvocation(ctx context.Context, rec internal.InvocationRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO invocations (id, kind, model_id, source_lang, target_lang, input_text, translated_text, output_text, latency_ms, error, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Kind, rec.ModelID, rec.SourceLang, rec.TargetLang,
		rec.InputText, rec.Translated, rec.OutputText,
		rec.LatencyMs, rec.Error, rec.Timestamp)
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// GetInvocation returns a single history entry by ID.
func (s *Store) GetInvocation(ctx context.Context, id string) (*internal.InvocationRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, kind, model_id, source_lang, target_lang, input_text, translated_text, output_text, latency_ms, error, created_at FROM invocations WHERE id = ?`,
		id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("invocation not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListInvocations returns the most recent entries first. An empty kind lists
// every kind; limit <= 0 lists everything.
func (s *Store) ListInvocations(ctx context.Context, kind string, limit int) ([]internal.InvocationRecord, error) {
	query := `SELECT id, kind, model_id, source_lang, target_lang, input_text, translated_text, output_text, latency_ms, error, created_at FROM invocations`
	var args []interface{}

	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY created_at DESC, id`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []internal.InvocationRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *rec)
	}
	return results, rows.Err()
}

// DeleteInvocation permanently removes a history entry by ID.
func (s *Store) DeleteInvocation(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM invocations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("invocation not found: %s", id)
	}
	return nil
}

// ClearInvocations removes all history entries.
func (s *Store) ClearInvocations(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM invocations`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// HistoryStats summarises the invocation history.
type HistoryStats struct {
	Total        int
	Failed       int
	ByKind       map[string]int
	AvgLatencyMs float64
}

// Stats returns summary statistics for the invocation history.
func (s *Store) Stats(ctx context.Context) (*HistoryStats, error) {
	stats := &HistoryStats{ByKind: make(map[string]int)}

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN error != '' THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(latency_ms), 0)
		FROM invocations`).Scan(
		&stats.Total,
		&stats.Failed,
		&stats.AvgLatencyMs,
	)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT kind, COUNT(*) FROM invocations GROUP BY kind`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		stats.ByKind[kind] = n
	}
	return stats, rows.Err()
}

// Record implements translator.Recorder so a Store can observe invocations.
func (s *Store) Record(ctx context.Context, res *translator.Result) error {
	_, err := s.SaveInvocation(ctx, internal.InvocationRecord{
		Kind:       string(res.Kind),
		ModelID:    res.ModelID,
		SourceLang: res.Fields.SourceLang,
		TargetLang: res.Fields.TargetLang,
		InputText:  res.Fields.Text,
		Translated: res.Fields.Translated,
		OutputText: res.Text,
		LatencyMs:  res.Latency.Milliseconds(),
		Error:      res.Error,
	})
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner) (*internal.InvocationRecord, error) {
	var rec internal.InvocationRecord
	var sourceLang, targetLang, translated, errMsg sql.NullString
	var latency sql.NullInt64

	if err := row.Scan(&rec.ID, &rec.Kind, &rec.ModelID, &sourceLang, &targetLang,
		&rec.InputText, &translated, &rec.OutputText, &latency, &errMsg, &rec.Timestamp); err != nil {
		return nil, err
	}

	rec.SourceLang = sourceLang.String
	rec.TargetLang = targetLang.String
	rec.Translated = translated.String
	rec.LatencyMs = latency.Int64
	rec.Error = errMsg.String
	return &rec, nil
}

func dsn(dbPath string) string {
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return dbPath + sep + "_pragma=busy_timeout(5000)"
}
