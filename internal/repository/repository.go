// Package repository handles all interactions with the database.
//
// It contains the raw SQL for the users, properties and reservations
// tables and the row scanning for each. Repositories return plain
// records and wrapped driver errors; classifying those errors is left
// to the service layer.
package repository
