package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4"
)

func (db *DB) CreateApp(ctx context.Context, name, signingSecret string, crashThreshold *int) (App, error) {
	const fn = "DB:CreateApp"
	var app App
	err := pgxscan.Get(ctx, db.pool, &app, `
		INSERT INTO apps (
			name,
			signing_secret,
			crash_rollback_threshold
		) VALUES ($1, $2, $3)
		RETURNING id, name, signing_secret, crash_rollback_threshold, created_at
	`, name, signingSecret, crashThreshold)
	if err != nil {
		return App{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return app, nil
}

func (db *DB) GetApp(ctx context.Context, appID string) (App, error) {
	const fn = "DB:GetApp"
	var app App
	err := pgxscan.Get(ctx, db.pool, &app, `
		SELECT id, name, signing_secret, crash_rollback_threshold, created_at
		FROM apps
		WHERE id = $1
	`, appID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return App{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return App{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return app, nil
}
