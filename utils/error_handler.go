package utils

import (
	"database/sql"
	"errors"
)

// IsSQLNoRowsError reports whether err means "no matching row".
func IsSQLNoRowsError(err error) bool {
	return err != nil && errors.Is(err, sql.ErrNoRows)
}
