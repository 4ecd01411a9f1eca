package state

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := initSchema(db); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}

	return db
}

func TestGetRange_Empty(t *testing.T) {
	db := setupTestDB(t)

	s, err := getRange(db, "volume")
	if err != nil {
		t.Fatalf("getRange failed: %v", err)
	}
	if s != nil {
		t.Errorf("expected nil range on empty db, got %+v", s)
	}
}

func TestSaveAndGetRange(t *testing.T) {
	db := setupTestDB(t)

	if err := saveRange(db, "volume", RangeState{Min: 0.25, Max: 0.75}); err != nil {
		t.Fatalf("saveRange failed: %v", err)
	}

	s, err := getRange(db, "volume")
	if err != nil {
		t.Fatalf("getRange failed: %v", err)
	}
	if s == nil {
		t.Fatal("expected saved range, got nil")
	}
	if s.Min != 0.25 || s.Max != 0.75 {
		t.Errorf("got %+v, want {0.25 0.75}", *s)
	}
}

func TestSaveRangeOverwrites(t *testing.T) {
	db := setupTestDB(t)

	if err := saveRange(db, "price", RangeState{Min: 0.1, Max: 0.9}); err != nil {
		t.Fatalf("saveRange failed: %v", err)
	}
	if err := saveRange(db, "price", RangeState{Min: 0.3, Max: 0.6}); err != nil {
		t.Fatalf("saveRange failed: %v", err)
	}

	s, err := getRange(db, "price")
	if err != nil {
		t.Fatalf("getRange failed: %v", err)
	}
	if s == nil || s.Min != 0.3 || s.Max != 0.6 {
		t.Errorf("got %+v, want {0.3 0.6}", s)
	}
}

func TestRangesKeyedBySlider(t *testing.T) {
	db := setupTestDB(t)

	if err := saveRange(db, "age", RangeState{Min: 0, Max: 1}); err != nil {
		t.Fatalf("saveRange failed: %v", err)
	}
	if err := saveRange(db, "price", RangeState{Min: 0.5, Max: 0.8}); err != nil {
		t.Fatalf("saveRange failed: %v", err)
	}

	age, err := getRange(db, "age")
	if err != nil {
		t.Fatalf("getRange failed: %v", err)
	}
	price, err := getRange(db, "price")
	if err != nil {
		t.Fatalf("getRange failed: %v", err)
	}
	if age == nil || age.Min != 0 || age.Max != 1 {
		t.Errorf("age = %+v, want {0 1}", age)
	}
	if price == nil || price.Min != 0.5 || price.Max != 0.8 {
		t.Errorf("price = %+v, want {0.5 0.8}", price)
	}
}

func TestHalfSavedRangeIgnored(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.Exec(`
		INSERT INTO range_state (slider_id, key, value) VALUES ('broken', 'MIN', 0.2)
	`); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	s, err := getRange(db, "broken")
	if err != nil {
		t.Fatalf("getRange failed: %v", err)
	}
	if s != nil {
		t.Errorf("expected nil for half-saved range, got %+v", s)
	}
}

func TestKeyCheckConstraint(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.Exec(`
		INSERT INTO range_state (slider_id, key, value) VALUES ('x', 'MID', 0.5)
	`)
	if err == nil {
		t.Error("expected CHECK constraint violation for key 'MID'")
	}
}

// TestManagerFlushOnClose checks that debounced writes still pending at
// Close make it to disk, last write winning.
func TestManagerFlushOnClose(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/test.db"

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if err := initSchema(db); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	m := &Manager{db: db}
	m.SaveRange("volume", RangeState{Min: 0.1, Max: 0.2})
	m.SaveRange("volume", RangeState{Min: 0.4, Max: 0.9})
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db2, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db2.Close()

	s, err := getRange(db2, "volume")
	if err != nil {
		t.Fatalf("getRange failed: %v", err)
	}
	if s == nil || s.Min != 0.4 || s.Max != 0.9 {
		t.Errorf("got %+v, want {0.4 0.9} (last write wins)", s)
	}
}
