package repositories

import (
	"context"
	"errors"

	"github.com/mattn/go-sqlite3"

	"train-booking-platform/internal/models"
)

// translateStorageErr maps low-level driver failures onto the error taxonomy.
// A busy or locked database is transient and safe to retry; everything else
// passes through for the caller to wrap.
func translateStorageErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return models.ErrStorageUnavailable
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return models.ErrStorageUnavailable
		}
	}

	return err
}

// isUniqueViolation reports whether err is a unique-constraint rejection,
// which for tickets means a concurrent writer committed the same seat first.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
