package util

import (
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// PgString makes s storable in Postgres text and jsonb values, which reject NUL characters
// and invalid UTF-8: both are replaced with U+FFFD.
func PgString(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	return strings.ReplaceAll(s, "\x00", "\uFFFD")
}

// OptionalText maps a blank string to SQL NULL and trims any other one.
func OptionalText(s string) pgtype.Text {
	trim := strings.TrimSpace(PgString(s))
	if trim == "" {
		return pgtype.Text{}
	}

	return pgtype.Text{String: trim, Valid: true}
}

// TextOrEmpty returns the string of t, or an empty string for NULL.
func TextOrEmpty(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}
