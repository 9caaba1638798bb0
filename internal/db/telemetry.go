package db

import (
	"context"
	"fmt"
)

func (db *DB) InsertTelemetryEvent(ctx context.Context, event TelemetryEvent) error {
	const fn = "DB:InsertTelemetryEvent"
	_, err := db.pool.Exec(ctx, `
		INSERT INTO telemetry_events (
			app_id,
			device_id,
			release_id,
			event_type,
			error_detail,
			client_timestamp
		) VALUES ($1, $2, $3, $4, $5, $6)
	`, event.AppID, event.DeviceID, event.ReleaseID, event.EventType, event.ErrorDetail, event.ClientTimestamp)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

func (db *DB) InsertTelemetryEvents(ctx context.Context, events []TelemetryEvent) error {
	const fn = "DB:InsertTelemetryEvents"
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrTransactionStartFailed, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		} else {
			tx.Commit(ctx)
		}
	}()

	for _, event := range events {
		_, err = tx.Exec(ctx, `
			INSERT INTO telemetry_events (
				app_id,
				device_id,
				release_id,
				event_type,
				error_detail,
				client_timestamp
			) VALUES ($1, $2, $3, $4, $5, $6)
		`, event.AppID, event.DeviceID, event.ReleaseID, event.EventType, event.ErrorDetail, event.ClientTimestamp)
		if err != nil {
			return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
		}
	}
	return nil
}
