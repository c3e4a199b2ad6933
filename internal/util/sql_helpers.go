package util

import (
	"database/sql"
	"time"
)

// StringToNullString converts a string to sql.NullString, treating
// the empty string as NULL.
func StringToNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// TimeToNullTime converts a time.Time to sql.NullTime.
func TimeToNullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
