// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the
// validation package, and calls the appropriate service layer.
// Store failures are returned as errors and mapped to responses by
// the global error handler.
package handler
