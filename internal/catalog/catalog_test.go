package catalog

import (
	"path/filepath"
	"testing"
	"time"
)

// setupTestDB creates a catalog database in a temp directory.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndRecent(t *testing.T) {
	db := setupTestDB(t)

	runs := []Run{
		{SourceFile: "a.ris", OutputFile: "analysis/a_analysis.csv", Total: 10, Duplicates: 2, Unique: 8, AnalyzedAt: time.Unix(1000, 0)},
		{SourceFile: "b.ris", OutputFile: "analysis/b_analysis.csv", Total: 5, Duplicates: 0, Unique: 5, AnalyzedAt: time.Unix(2000, 0)},
	}
	for _, run := range runs {
		if _, err := db.Record(run); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	got, err := db.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent() returned %d runs, want 2", len(got))
	}

	// Newest first.
	if got[0].SourceFile != "b.ris" {
		t.Errorf("Recent()[0].SourceFile = %q, want %q", got[0].SourceFile, "b.ris")
	}
	if got[1].SourceFile != "a.ris" {
		t.Errorf("Recent()[1].SourceFile = %q, want %q", got[1].SourceFile, "a.ris")
	}
	if got[1].Total != 10 || got[1].Duplicates != 2 || got[1].Unique != 8 {
		t.Errorf("Recent()[1] counts = %d/%d/%d, want 10/2/8",
			got[1].Total, got[1].Duplicates, got[1].Unique)
	}
}

func TestRecent_Limit(t *testing.T) {
	db := setupTestDB(t)

	for i := 0; i < 5; i++ {
		run := Run{SourceFile: "x.ris", OutputFile: "out.csv", AnalyzedAt: time.Unix(int64(i), 0)}
		if _, err := db.Record(run); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	got, err := db.Recent(3)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Recent(3) returned %d runs, want 3", len(got))
	}
}

func TestBySource(t *testing.T) {
	db := setupTestDB(t)

	files := []string{"a.ris", "b.ris", "a.ris"}
	for i, f := range files {
		run := Run{SourceFile: f, OutputFile: "out.csv", AnalyzedAt: time.Unix(int64(i), 0)}
		if _, err := db.Record(run); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	got, err := db.BySource("a.ris")
	if err != nil {
		t.Fatalf("BySource() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("BySource(a.ris) returned %d runs, want 2", len(got))
	}
}

func TestRecord_DefaultsAnalyzedAt(t *testing.T) {
	db := setupTestDB(t)

	id, err := db.Record(Run{SourceFile: "a.ris", OutputFile: "out.csv"})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if id == 0 {
		t.Error("Record() returned id 0, want assigned id")
	}

	got, err := db.Recent(1)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 1 || got[0].AnalyzedAt.IsZero() {
		t.Errorf("Recent() = %+v, want non-zero AnalyzedAt", got)
	}
}
