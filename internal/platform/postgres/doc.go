// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces, built on database/sql over the pgx stdlib driver.
// Driver-level failures are mapped to the sentinel errors declared in
// the store package so that callers never need to inspect pg error codes.
package postgres
