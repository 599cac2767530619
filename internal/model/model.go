// Package model holds the records read from and written to the store.
//
// They are passive data: no behavior beyond what the storage schema
// enforces. Row shapes mirror the users, properties, reservations and
// property_reviews tables.
package model
