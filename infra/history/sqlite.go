package history

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/zecke/rostergen/core/model"
	"github.com/zecke/rostergen/core/schedule"
)

// SQLiteLog is a persisted assignment log backing the HistoryProvider
// interface. Rows are append-only; the latest row per (period, role) wins, so
// a re-run of a period supersedes the earlier commitment. The full log is
// loaded into memory on open because lookback windows are small.
type SQLiteLog struct {
	db *sql.DB

	mu        sync.RWMutex
	primary   map[int]string
	secondary map[int]string
}

const logSchema = `
CREATE TABLE IF NOT EXISTS assignments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	period INTEGER NOT NULL,
	role TEXT NOT NULL,
	person TEXT NOT NULL,
	location TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_assignments_period_role ON assignments(period, role, id);
`

// OpenSQLite opens (and creates if needed) the assignment log at path. WAL
// mode keeps concurrent readers from blocking the writer.
func OpenSQLite(path string) (*SQLiteLog, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open assignment log: %w", err)
	}
	if _, err := db.Exec(logSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create assignment log schema: %w", err)
	}
	l := &SQLiteLog{db: db, primary: make(map[int]string), secondary: make(map[int]string)}
	if err := l.load(); err != nil {
		db.Close()
		return nil, err
	}
	return l, nil
}

func (l *SQLiteLog) load() error {
	rows, err := l.db.Query(`SELECT period, role, person FROM assignments ORDER BY id`)
	if err != nil {
		return fmt.Errorf("load assignment log: %w", err)
	}
	defer rows.Close()

	l.mu.Lock()
	defer l.mu.Unlock()
	for rows.Next() {
		var period int
		var role, person string
		if err := rows.Scan(&period, &role, &person); err != nil {
			return fmt.Errorf("scan assignment: %w", err)
		}
		switch role {
		case model.RolePrimary.String():
			l.primary[period] = person
		case model.RoleSecondary.String():
			l.secondary[period] = person
		}
	}
	return rows.Err()
}

// WasPrimary implements schedule.HistoryProvider.
func (l *SQLiteLog) WasPrimary(period int, p model.Person) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.primary[period] == p.Name
}

// WasSecondary implements schedule.HistoryProvider.
func (l *SQLiteLog) WasSecondary(period int, p model.Person) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.secondary[period] == p.Name
}

// RecordSchedule appends every assignment of an accepted roster so later runs
// can anchor against it.
func (l *SQLiteLog) RecordSchedule(sched *model.Schedule, rotation model.Rotation) error {
	locations := make(map[string]string, len(rotation.Persons))
	for _, p := range rotation.Persons {
		locations[p.Name] = p.Location
	}

	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("record schedule: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO assignments (run_id, period, role, person, location) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("record schedule: %w", err)
	}
	defer stmt.Close()

	for _, a := range sched.Assignments {
		if _, err := stmt.Exec(sched.RunID, a.Period, a.Role.String(), a.Person, locations[a.Person]); err != nil {
			tx.Rollback()
			return fmt.Errorf("record assignment: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record schedule: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, a := range sched.Assignments {
		switch a.Role {
		case model.RolePrimary:
			l.primary[a.Period] = a.Person
		case model.RoleSecondary:
			l.secondary[a.Period] = a.Person
		}
	}
	return nil
}

// Close releases the database handle.
func (l *SQLiteLog) Close() error { return l.db.Close() }

// New builds the HistoryProvider selected by cfg. The returned closer is nil
// for in-memory backends.
func New(cfg Config) (schedule.HistoryProvider, func() error, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	switch cfg.Backend {
	case "none":
		return schedule.NoHistory{}, nil, nil
	case "static":
		hist := schedule.StaticHistory{Primary: make(map[int]string), Secondary: make(map[int]string)}
		for _, e := range cfg.Entries {
			if e.Primary != "" {
				hist.Primary[e.Period] = e.Primary
			}
			if e.Secondary != "" {
				hist.Secondary[e.Period] = e.Secondary
			}
		}
		return hist, nil, nil
	default:
		log, err := OpenSQLite(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return log, log.Close, nil
	}
}
