package sqlutil

import "database/sql"

// ToSqlString converts *string to sql.NullString.
func ToSqlString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// FromSqlStringPtr converts sql.NullString to *string.
func FromSqlStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// ToSqlInt32 converts *int to sql.NullInt32.
func ToSqlInt32(i *int) sql.NullInt32 {
	if i == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*i), Valid: true}
}

// FromSqlInt32 converts sql.NullInt32 to *int.
func FromSqlInt32(ni sql.NullInt32) *int {
	if !ni.Valid {
		return nil
	}
	i := int(ni.Int32)
	return &i
}
