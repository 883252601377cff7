// Package sqlite implements the storage interfaces over a SQLite
// database file. Migrations are embedded and applied on Open.
package sqlite
