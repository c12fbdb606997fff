// Package dberr maps driver and gorm errors onto the sentinel errors in
// the entities package so callers never inspect sqlite error strings.
package dberr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/mrlokans/eventadmin/internal/entities"
)

// Translate wraps uniqueness violations in entities.ErrDuplicate and
// missing rows in entities.ErrNotFound. The original message is kept.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, entities.ErrDuplicate) || errors.Is(err, entities.ErrNotFound) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ErrNotFound
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", entities.ErrDuplicate, err.Error())
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
