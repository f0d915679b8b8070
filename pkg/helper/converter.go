package helper

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// PgString converts a string to pgtype.Text, empty strings become NULL.
func PgString(s string) pgtype.Text {
	return pgtype.Text{
		String: s,
		Valid:  s != "",
	}
}

func StringFromPg(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}

	return t.String
}

var (
	// AppTimezone holds the application's timezone
	AppTimezone *time.Location
)

// InitTimezone initializes the application timezone
func InitTimezone(timezone string) error {
	if timezone == "" {
		timezone = "UTC"
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		// Fallback to UTC if the requested timezone is not available
		AppTimezone = time.UTC

		return err
	}

	AppTimezone = loc

	return nil
}

// NowInAppTimezone returns the current time in the application's timezone
func NowInAppTimezone() time.Time {
	if AppTimezone == nil {
		return time.Now().UTC()
	}

	return time.Now().In(AppTimezone)
}

// ToAppTimezone converts a time to the application's timezone
func ToAppTimezone(t time.Time) time.Time {
	if AppTimezone == nil {
		return t.UTC()
	}

	return t.In(AppTimezone)
}
