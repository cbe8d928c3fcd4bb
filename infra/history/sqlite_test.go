package history

import (
	"path/filepath"
	"testing"

	"github.com/zecke/rostergen/core/model"
	"github.com/zecke/rostergen/core/schedule"
)

func testRotation() model.Rotation {
	return model.Rotation{Persons: []model.Person{
		{Name: "me", Location: "abc"},
		{Name: "be", Location: "abc"},
	}}
}

func testSchedule(runID string, period int, primary, secondary string) *model.Schedule {
	return &model.Schedule{
		RunID: runID,
		Assignments: []model.Assignment{
			{Period: period, Role: model.RolePrimary, Person: primary},
			{Period: period, Role: model.RoleSecondary, Person: secondary},
		},
	}
}

func TestSQLiteLogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	log, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := log.RecordSchedule(testSchedule("r1", 0, "me", "be"), testRotation()); err != nil {
		t.Fatalf("RecordSchedule: %v", err)
	}

	me := model.Person{Name: "me", Location: "abc"}
	be := model.Person{Name: "be", Location: "abc"}
	if !log.WasPrimary(0, me) || log.WasPrimary(0, be) {
		t.Fatalf("primary lookup wrong after record")
	}
	if !log.WasSecondary(0, be) {
		t.Fatalf("secondary lookup wrong after record")
	}
	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// A fresh handle sees the persisted log.
	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if !reopened.WasPrimary(0, me) || !reopened.WasSecondary(0, be) {
		t.Fatalf("log not persisted across reopen")
	}
}

func TestSQLiteLogLatestRowWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	log, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer log.Close()

	if err := log.RecordSchedule(testSchedule("r1", 3, "me", "be"), testRotation()); err != nil {
		t.Fatalf("RecordSchedule: %v", err)
	}
	// Re-running the period supersedes the earlier commitment.
	if err := log.RecordSchedule(testSchedule("r2", 3, "be", "me"), testRotation()); err != nil {
		t.Fatalf("RecordSchedule: %v", err)
	}

	be := model.Person{Name: "be"}
	if !log.WasPrimary(3, be) {
		t.Fatalf("latest run must win")
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if !reopened.WasPrimary(3, be) || !reopened.WasSecondary(3, model.Person{Name: "me"}) {
		t.Fatalf("latest run must win after reload")
	}
}

func TestNewSelectsBackend(t *testing.T) {
	hist, closer, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := hist.(schedule.NoHistory); !ok || closer != nil {
		t.Fatalf("empty config should yield the none backend, got %T", hist)
	}

	hist, closer, err = New(Config{
		Backend: "static",
		Entries: []Entry{{Period: 0, Primary: "me", Secondary: "be"}},
	})
	if err != nil {
		t.Fatalf("New static: %v", err)
	}
	if closer != nil {
		t.Fatalf("static backend needs no closer")
	}
	if !hist.WasPrimary(0, model.Person{Name: "me"}) {
		t.Fatalf("static entries not applied")
	}

	hist, closer, err = New(Config{Backend: "sqlite", Path: filepath.Join(t.TempDir(), "h.db")})
	if err != nil {
		t.Fatalf("New sqlite: %v", err)
	}
	if _, ok := hist.(*SQLiteLog); !ok || closer == nil {
		t.Fatalf("sqlite backend wiring wrong: %T", hist)
	}
	if err := closer(); err != nil {
		t.Fatalf("closer: %v", err)
	}

	if _, _, err := New(Config{Backend: "sqlite"}); err == nil {
		t.Fatalf("sqlite backend without a path must fail")
	}
	if _, _, err := New(Config{Backend: "redis"}); err == nil {
		t.Fatalf("unknown backend must fail")
	}
}
