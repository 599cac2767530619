// Package service contains the business logic.
//
// It sits between the handler and repository layers. QueryService is
// the data-access façade: it runs repository calls and normalizes their
// outcome into a Result. AuthService builds sessions on top of it.
package service
