// Package store owns the per-device SQLite database of the vault.
//
// Open creates the database file on first use, applies the embedded goose
// migrations when the schema is missing, and migrates an existing schema
// forward. The returned Store holds exactly one connection which is handed
// to the repositories through DB and WithTx.
//
// Read is the generic single-row read used for every vault entity:
//
//	var u models.User
//	status, err := store.Read(ctx, s, &u, models.UserFilter{})
//	if err == nil && status == store.ReadEmpty {
//	    // nobody signed in yet
//	}
package store
