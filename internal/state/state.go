package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "rangeband"
	dbFileName   = "rangeband.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]RangeState
}

// RangeState holds a slider's selection as normalized positions, so
// restored values survive bounds changes between runs.
type RangeState struct {
	Min float64
	Max float64
}

func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending state
	for id, s := range pending {
		_ = saveRange(m.db, id, s)
	}

	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// GetRange returns the saved selection for a slider, or nil when none
// was saved.
func (m *Manager) GetRange(sliderID string) (*RangeState, error) {
	return getRange(m.db, sliderID)
}

// SaveRange schedules a debounced write of the slider's selection.
// Rapid updates during a drag collapse into a single write.
func (m *Manager) SaveRange(sliderID string, s RangeState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	if m.pending == nil {
		m.pending = map[string]RangeState{}
	}
	m.pending[sliderID] = s

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		for id, s := range pending {
			_ = saveRange(m.db, id, s)
		}
	})
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
