package db

import (
	"errors"

	"github.com/jackc/pgconn"
)

var (
	ErrInsertFailed           = errors.New("insert operation failed")
	ErrSelectFailed           = errors.New("select operation failed")
	ErrUpdateFailed           = errors.New("update operation failed")
	ErrTransactionStartFailed = errors.New("transaction start failed")

	ErrNotFound         = errors.New("row not found")
	ErrDuplicateVersion = errors.New("release version already exists")
	ErrInvalidState     = errors.New("invalid release state for operation")
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
