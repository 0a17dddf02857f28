package storage

import (
	"context"
	"fmt"

	"github.com/claude/trainload/internal/muscles"
)

// GetThresholdOverrides returns the stored per-muscle MEV/MRV overrides.
// Rows naming a muscle outside the catalog are ignored.
func (db *DB) GetThresholdOverrides(ctx context.Context) (map[muscles.Muscle]muscles.Threshold, error) {
	rows, err := db.Pool.Query(ctx, `SELECT muscle, mev, mrv FROM muscle_thresholds`)
	if err != nil {
		return nil, fmt.Errorf("querying thresholds: %w", err)
	}
	defer rows.Close()

	result := make(map[muscles.Muscle]muscles.Threshold)
	for rows.Next() {
		var name string
		var t muscles.Threshold
		if err := rows.Scan(&name, &t.MEV, &t.MRV); err != nil {
			return nil, fmt.Errorf("scanning threshold: %w", err)
		}
		if m, ok := muscles.Parse(name); ok {
			result[m] = t
		}
	}
	return result, rows.Err()
}

// GetThresholdOverride returns the stored override for one muscle, or
// ErrNotFound.
func (db *DB) GetThresholdOverride(ctx context.Context, m muscles.Muscle) (muscles.Threshold, error) {
	var t muscles.Threshold
	err := db.Pool.QueryRow(ctx,
		`SELECT mev, mrv FROM muscle_thresholds WHERE muscle = $1`, string(m),
	).Scan(&t.MEV, &t.MRV)
	if err != nil {
		if err = notFound(err); err == ErrNotFound {
			return t, err
		}
		return t, fmt.Errorf("querying threshold for %s: %w", m, err)
	}
	return t, nil
}

// SetThresholdOverride stores the MEV/MRV pair for one muscle.
func (db *DB) SetThresholdOverride(ctx context.Context, m muscles.Muscle, t muscles.Threshold) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO muscle_thresholds (muscle, mev, mrv) VALUES ($1, $2, $3)
		 ON CONFLICT (muscle) DO UPDATE SET mev = EXCLUDED.mev, mrv = EXCLUDED.mrv, updated_at = NOW()`,
		string(m), t.MEV, t.MRV)
	if err != nil {
		return fmt.Errorf("setting threshold for %s: %w", m, err)
	}
	return nil
}

// DeleteThresholdOverride removes a muscle's override so the defaults apply
// again. Returns ErrNotFound when there was none.
func (db *DB) DeleteThresholdOverride(ctx context.Context, m muscles.Muscle) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM muscle_thresholds WHERE muscle = $1`, string(m))
	if err != nil {
		return fmt.Errorf("deleting threshold for %s: %w", m, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
