// Package errs defines the error shapes returned to API clients.
//
// - Return consistent error shapes to API clients (JSON).
// - Support field-level errors for store rejections (e.g. a missing column).
// - Support "action hints" (like redirect to login) that the frontend interprets.
// - Play nicely with Go's standard errors package.
package errs
