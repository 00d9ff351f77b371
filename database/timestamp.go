package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

type timeScanner struct {
	dest *time.Time
}

// ScanTime returns a scanner that fills dest from a driver time value.
// SQLite hands back text for expressions and RETURNING columns, so string
// and []byte values are parsed with the sqlite timestamp layouts.
func ScanTime(dest *time.Time) sql.Scanner {
	return timeScanner{dest: dest}
}

func (s timeScanner) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s.dest = time.Time{}
		return nil
	case time.Time:
		*s.dest = v
		return nil
	case []byte:
		return s.parse(string(v))
	case string:
		return s.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into time.Time", src)
	}
}

func (s timeScanner) parse(value string) error {
	value = strings.TrimSuffix(value, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			*s.dest = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as timestamp", value)
}
