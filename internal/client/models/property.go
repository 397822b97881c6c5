package models

// Property is a free-form key/value pair owned by a user.
type Property struct {
	ID       int64
	UserID   int64
	ServerID int64
	Key      string
	Value    string
}

// PropertyFilter selects a property by owner and key.
type PropertyFilter struct {
	UserID int64
	Key    string
}

// PropertyColumns is the column list matching Property.ScanRow.
const PropertyColumns = `id, user_id, server_id, key, value`

func (p *Property) ReadQuery(f PropertyFilter) (string, []any) {
	return `SELECT ` + PropertyColumns + ` FROM properties WHERE user_id = ? AND key = ? ORDER BY id LIMIT 1`,
		[]any{f.UserID, f.Key}
}

func (p *Property) ScanRow(row RowScanner) error {
	return row.Scan(&p.ID, &p.UserID, &p.ServerID, &p.Key, &p.Value)
}
