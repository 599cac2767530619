// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic error codes from the database driver and
// classifies them into failure reasons (constraint violation,
// connectivity, malformed query) for the query façade, and into
// user-friendly HTTP errors (e.g., converting a "unique violation"
// into a "Bad Request" error) for the handlers.
package sqlerr
