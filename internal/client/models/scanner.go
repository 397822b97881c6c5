package models

// RowScanner is the part of *sql.Row and *sql.Rows used to map a result row.
type RowScanner interface {
	Scan(dest ...any) error
}
