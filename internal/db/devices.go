package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4"
)

// TouchDevice upserts the device row with what the device last reported.
// Called fire-and-forget after a served update-check, so lost updates here
// never affect a verdict.
func (db *DB) TouchDevice(ctx context.Context, appID, deviceID, platform, appVersion, bundleVersion, bundleHash string) error {
	const fn = "DB:TouchDevice"
	_, err := db.pool.Exec(ctx, `
		INSERT INTO devices (
			app_id,
			device_id,
			platform,
			app_version,
			current_bundle_version,
			current_bundle_hash
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (app_id, device_id) DO UPDATE SET
			platform = EXCLUDED.platform,
			app_version = EXCLUDED.app_version,
			current_bundle_version = EXCLUDED.current_bundle_version,
			current_bundle_hash = EXCLUDED.current_bundle_hash,
			last_seen_at = now()
	`, appID, deviceID, platform, appVersion, bundleVersion, bundleHash)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

func (db *DB) IncrementDeviceCrashCount(ctx context.Context, appID, deviceID string) error {
	const fn = "DB:IncrementDeviceCrashCount"
	_, err := db.pool.Exec(ctx, `
		INSERT INTO devices (app_id, device_id, crash_count)
		VALUES ($1, $2, 1)
		ON CONFLICT (app_id, device_id) DO UPDATE SET
			crash_count = devices.crash_count + 1,
			last_seen_at = now()
	`, appID, deviceID)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

func (db *DB) GetDevice(ctx context.Context, appID, deviceID string) (Device, error) {
	const fn = "DB:GetDevice"
	var device Device
	err := pgxscan.Get(ctx, db.pool, &device, `
		SELECT id, app_id, device_id, platform, app_version,
			current_bundle_version, current_bundle_hash, crash_count, last_seen_at
		FROM devices
		WHERE app_id = $1
		AND device_id = $2
	`, appID, deviceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Device{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return Device{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return device, nil
}
