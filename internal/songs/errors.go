package songs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoTable reports that the songs table has not been created yet.
// Callers match it with errors.Is to tell a missing schema apart from
// other storage failures.
var ErrNoTable = errors.New("songs table does not exist")

// wrapStorageErr adds operation context and classifies missing-table
// failures. The sqlite driver reports these as SQLITE_ERROR with a
// "no such table" message; no typed code survives database/sql, so the
// message is the only signal available.
func wrapStorageErr(op string, err error) error {
	if strings.Contains(err.Error(), "no such table") {
		return fmt.Errorf("%s: %w: %v", op, ErrNoTable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
