package models

// IDFilter selects a vault entity by its local id or, when ID is zero, by the
// id the server assigned to it.
type IDFilter struct {
	ID       int64
	ServerID int64
}

func (f IDFilter) where() (string, []any) {
	if f.ID != 0 {
		return ` WHERE id = ?`, []any{f.ID}
	}
	return ` WHERE server_id = ? AND server_id <> 0`, []any{f.ServerID}
}

// Group is a folder of credentials. Groups nest through GroupID.
type Group struct {
	ID            int64
	UserID        int64
	ServerID      int64
	GroupID       int64
	ServerGroupID int64
	Title         string
	Icon          string
	Note          string
	Synchronized  bool
	Deleted       bool
	Shared        bool
}

// GroupColumns is the column list matching Group.ScanRow.
const GroupColumns = `id, user_id, server_id, COALESCE(group_id, 0), COALESCE(server_group_id, 0),
	title, COALESCE(icon, ''), COALESCE(note, ''), synchronized, deleted, COALESCE(shared, 0)`

func (g *Group) ReadQuery(f IDFilter) (string, []any) {
	where, args := f.where()
	return `SELECT ` + GroupColumns + ` FROM "groups"` + where + ` LIMIT 1`, args
}

func (g *Group) ScanRow(row RowScanner) error {
	return row.Scan(&g.ID, &g.UserID, &g.ServerID, &g.GroupID, &g.ServerGroupID,
		&g.Title, &g.Icon, &g.Note, &g.Synchronized, &g.Deleted, &g.Shared)
}

// GroupField is a field template attached to a group.
type GroupField struct {
	ID           int64
	UserID       int64
	ServerID     int64
	GroupID      int64
	Title        string
	IsHidden     bool
	Synchronized bool
	Deleted      bool
	IsTemporary  bool
}

// GroupFieldColumns is the column list matching GroupField.ScanRow.
const GroupFieldColumns = `id, user_id, server_id, group_id, title, is_hidden,
	synchronized, deleted, COALESCE(is_temporary, 0)`

func (g *GroupField) ReadQuery(f IDFilter) (string, []any) {
	where, args := f.where()
	return `SELECT ` + GroupFieldColumns + ` FROM group_fields` + where + ` LIMIT 1`, args
}

func (g *GroupField) ScanRow(row RowScanner) error {
	return row.Scan(&g.ID, &g.UserID, &g.ServerID, &g.GroupID, &g.Title, &g.IsHidden,
		&g.Synchronized, &g.Deleted, &g.IsTemporary)
}

// Field is a single credential value inside a group.
type Field struct {
	ID           int64
	UserID       int64
	ServerID     int64
	GroupID      int64
	GroupFieldID int64
	Title        string
	Value        string
	IsHidden     bool
	Synchronized bool
	Deleted      bool
}

// FieldColumns is the column list matching Field.ScanRow.
const FieldColumns = `id, user_id, server_id, group_id, group_field_id, title, value,
	is_hidden, synchronized, deleted`

func (fl *Field) ReadQuery(f IDFilter) (string, []any) {
	where, args := f.where()
	return `SELECT ` + FieldColumns + ` FROM fields` + where + ` LIMIT 1`, args
}

func (fl *Field) ScanRow(row RowScanner) error {
	return row.Scan(&fl.ID, &fl.UserID, &fl.ServerID, &fl.GroupID, &fl.GroupFieldID,
		&fl.Title, &fl.Value, &fl.IsHidden, &fl.Synchronized, &fl.Deleted)
}
