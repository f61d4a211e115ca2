package recorder

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"BaselExplorer/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists committed years to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	slog.Info("sqlite recorder opened", "path", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS year_records (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			session_id    TEXT NOT NULL,
			year          INTEGER NOT NULL,
			growth_rate   REAL,
			roa           REAL,
			stress        INTEGER,
			gross_profit  REAL,
			dividends     REAL,
			provision     REAL,
			capital_delta REAL,
			capital       REAL,
			assets        REAL,
			car           REAL,
			leverage      REAL,
			rwa_fraction  REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_year_session ON year_records(session_id, year)`,

		`CREATE TABLE IF NOT EXISTS session_events (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			session_id      TEXT NOT NULL,
			years_committed INTEGER,
			final_year      INTEGER,
			final_capital   REAL,
			reason          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_session_events_ts ON session_events(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordYear(evt *YearEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tr := evt.Transition
	rec := evt.Record
	stress := 0
	if evt.Params.Stress {
		stress = 1
	}

	_, err := r.db.Exec(`INSERT INTO year_records
		(timestamp, session_id, year, growth_rate, roa, stress,
		 gross_profit, dividends, provision, capital_delta,
		 capital, assets, car, leverage, rwa_fraction)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.SessionID, rec.Year,
		evt.Params.GrowthRatePercent, evt.Params.ROAPercent, stress,
		tr.GrossProfit, tr.Dividends, tr.Provision, tr.CapitalDelta,
		rec.Capital, rec.Assets, rec.CAR, rec.Leverage, rec.RWAFraction,
	)
	return err
}

func (r *SQLiteRecorder) RecordReset(evt *ResetEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO session_events
		(timestamp, session_id, years_committed, final_year, final_capital, reason)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), evt.SessionID, evt.YearsCommitted,
		evt.FinalYear, evt.FinalCapital, evt.Reason,
	)
	return err
}

// History returns the recorded years of a session in commit order.
func (r *SQLiteRecorder) History(sessionID string) ([]model.YearRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT year, capital, assets, car, leverage, rwa_fraction
		FROM year_records WHERE session_id = ? ORDER BY id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []model.YearRecord
	for rows.Next() {
		var rec model.YearRecord
		if err := rows.Scan(&rec.Year, &rec.Capital, &rec.Assets, &rec.CAR, &rec.Leverage, &rec.RWAFraction); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	slog.Info("closing sqlite recorder")
	return r.db.Close()
}
