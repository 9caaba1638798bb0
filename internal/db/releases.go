package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const releaseColumns = `
	id, app_id, version, bundle_url, bundle_hash, bundle_size,
	status, rollout_percentage, min_app_version, max_app_version,
	release_notes, rollback_reason, created_at`

// CreateRelease inserts a new release in the paused state with no bundle
// attached. A (app_id, version) collision maps to ErrDuplicateVersion.
func (db *DB) CreateRelease(ctx context.Context, appID, version string, minAppVersion, maxAppVersion, releaseNotes *string) (Release, error) {
	const fn = "DB:CreateRelease"
	var release Release
	err := pgxscan.Get(ctx, db.pool, &release, `
		INSERT INTO releases (
			app_id,
			version,
			min_app_version,
			max_app_version,
			release_notes
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING `+releaseColumns,
		appID, version, minAppVersion, maxAppVersion, releaseNotes)
	if err != nil {
		if isUniqueViolation(err) {
			return Release{}, fmt.Errorf("%s:%w", fn, ErrDuplicateVersion)
		}
		return Release{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return release, nil
}

func (db *DB) GetRelease(ctx context.Context, releaseID string) (Release, error) {
	const fn = "DB:GetRelease"
	var release Release
	err := pgxscan.Get(ctx, db.pool, &release, `
		SELECT `+releaseColumns+`
		FROM releases
		WHERE id = $1
	`, releaseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Release{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return Release{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return release, nil
}

// GetServableRelease returns the newest active release with a bundle
// attached, which is the single release update-checks may offer.
func (db *DB) GetServableRelease(ctx context.Context, appID string) (Release, error) {
	const fn = "DB:GetServableRelease"
	var release Release
	err := pgxscan.Get(ctx, db.pool, &release, `
		SELECT `+releaseColumns+`
		FROM releases
		WHERE app_id = $1
		AND status = $2
		AND bundle_url <> ''
		ORDER BY created_at DESC
		LIMIT 1
	`, appID, StatusActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Release{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return Release{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return release, nil
}

func (db *DB) ListReleases(ctx context.Context, appID string) ([]Release, error) {
	const fn = "DB:ListReleases"
	var releases []Release
	err := pgxscan.Select(ctx, db.pool, &releases, `
		SELECT `+releaseColumns+`
		FROM releases
		WHERE app_id = $1
		ORDER BY created_at DESC
	`, appID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return releases, nil
}

func (db *DB) AttachBundle(ctx context.Context, releaseID, bundleURL, bundleHash string, bundleSize int64) error {
	const fn = "DB:AttachBundle"
	tag, err := db.pool.Exec(ctx, `
		UPDATE releases
		SET bundle_url = $2,
			bundle_hash = $3,
			bundle_size = $4
		WHERE id = $1
	`, releaseID, bundleURL, bundleHash, bundleSize)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", fn, ErrNotFound)
	}
	return nil
}

// ActivateRelease flips paused -> active. The guard rejects releases
// without a bundle and releases outside the paused state.
func (db *DB) ActivateRelease(ctx context.Context, releaseID string, rolloutPercentage int) error {
	const fn = "DB:ActivateRelease"
	tag, err := db.pool.Exec(ctx, `
		UPDATE releases
		SET status = $2,
			rollout_percentage = $3,
			rollback_reason = NULL
		WHERE id = $1
		AND status = $4
		AND bundle_url <> ''
	`, releaseID, StatusActive, rolloutPercentage, StatusPaused)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := db.GetRelease(ctx, releaseID); err != nil {
			return err
		}
		return fmt.Errorf("%s:%w", fn, ErrInvalidState)
	}
	return nil
}

func (db *DB) PauseRelease(ctx context.Context, releaseID string) error {
	const fn = "DB:PauseRelease"
	tag, err := db.pool.Exec(ctx, `
		UPDATE releases
		SET status = $2
		WHERE id = $1
		AND status = $3
	`, releaseID, StatusPaused, StatusActive)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := db.GetRelease(ctx, releaseID); err != nil {
			return err
		}
		return fmt.Errorf("%s:%w", fn, ErrInvalidState)
	}
	return nil
}

// RollbackRelease deactivates every active release of the app except the
// target and forces the target active, inside one transaction so a
// concurrent activation cannot interleave between the two statements.
func (db *DB) RollbackRelease(ctx context.Context, appID, targetReleaseID, reason string) error {
	const fn = "DB:RollbackRelease"
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

	_, err = tx.Exec(ctx, `
		UPDATE releases
		SET status = $3,
			rollback_reason = $4
		WHERE app_id = $1
		AND status = $2
		AND id <> $5
	`, appID, StatusActive, StatusRolledBack, reason, targetReleaseID)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
	}

	var tag pgconn.CommandTag
	tag, err = tx.Exec(ctx, `
		UPDATE releases
		SET status = $3,
			rollback_reason = NULL
		WHERE id = $1
		AND app_id = $2
	`, targetReleaseID, appID, StatusActive)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
	}
	if tag.RowsAffected() == 0 {
		err = fmt.Errorf("%s:%w", fn, ErrNotFound)
		return err
	}
	return nil
}

// MarkRolledBackIfActive is the compare-and-swap used by the automatic
// rollback path. Only a caller that observes the release active flips it;
// everyone else affects zero rows.
func (db *DB) MarkRolledBackIfActive(ctx context.Context, releaseID, reason string) (bool, error) {
	const fn = "DB:MarkRolledBackIfActive"
	tag, err := db.pool.Exec(ctx, `
		UPDATE releases
		SET status = $2,
			rollback_reason = $3
		WHERE id = $1
		AND status = $4
	`, releaseID, StatusRolledBack, reason, StatusActive)
	if err != nil {
		return false, fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
	}
	return tag.RowsAffected() > 0, nil
}
