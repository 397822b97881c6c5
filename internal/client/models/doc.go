// Package models defines the plain data types of the local vault: the
// registered Device, the signed-in User and the synchronized vault entities
// (Group, GroupField, Field, Property).
//
// Entity types also describe how they are read from the local store. Each of
// them pairs a filter type with a ReadQuery method building a single-row
// query, and a ScanRow method mapping that row back into the value. See
// store.Read for the executing side.
package models
