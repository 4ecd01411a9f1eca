package state

import (
	"database/sql"

	"github.com/llehouerou/rangeband/internal/db"
)

// Row keys for the two ends of a selection.
const (
	keyMin = "MIN"
	keyMax = "MAX"
)

func getRange(sqldb *sql.DB, sliderID string) (*RangeState, error) {
	rows, err := sqldb.Query(`
		SELECT key, value FROM range_state WHERE slider_id = ?
	`, sliderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var s RangeState
	var haveMin, haveMax bool
	for rows.Next() {
		var key string
		var value float64
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		switch key {
		case keyMin:
			s.Min = value
			haveMin = true
		case keyMax:
			s.Max = value
			haveMax = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// A half-saved selection is useless; treat it as absent.
	if !haveMin || !haveMax {
		return nil, nil
	}
	return &s, nil
}

func saveRange(sqldb *sql.DB, sliderID string, s RangeState) error {
	return db.WithTx(sqldb, func(tx *sql.Tx) error {
		for key, value := range map[string]float64{keyMin: s.Min, keyMax: s.Max} {
			_, err := tx.Exec(`
				INSERT INTO range_state (slider_id, key, value)
				VALUES (?, ?, ?)
				ON CONFLICT(slider_id, key) DO UPDATE SET
					value = excluded.value
			`, sliderID, key, value)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
