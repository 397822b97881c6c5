package models

import "fmt"

// UserStatus is the account status of the signed-in user.
type UserStatus int

const (
	UserActive UserStatus = iota
	UserUnactive
	UserDeleted
)

func (s UserStatus) String() string {
	switch s {
	case UserActive:
		return "active"
	case UserUnactive:
		return "unactive"
	case UserDeleted:
		return "deleted"
	default:
		return fmt.Sprintf("UserStatus(%d)", int(s))
	}
}

// User is the single signed-in account of the local vault. The store holds at
// most one row; its absence means nobody has signed in on this device yet.
type User struct {
	ID     int64
	UUID   string
	Status UserStatus
}

// UserFilter selects the user row. The zero value selects the single row.
type UserFilter struct {
	UUID string
}

const userColumns = `id, COALESCE(user_uuid, ''), COALESCE(status, 0)`

// ReadQuery builds the single-row user query.
func (u *User) ReadQuery(f UserFilter) (string, []any) {
	if f.UUID == "" {
		return `SELECT ` + userColumns + ` FROM "user" ORDER BY id LIMIT 1`, nil
	}
	return `SELECT ` + userColumns + ` FROM "user" WHERE user_uuid = ? ORDER BY id LIMIT 1`, []any{f.UUID}
}

// ScanRow maps a row produced by ReadQuery.
func (u *User) ScanRow(row RowScanner) error {
	return row.Scan(&u.ID, &u.UUID, &u.Status)
}
