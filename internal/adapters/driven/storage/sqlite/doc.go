// Package sqlite provides SQLite-backed local storage.
//
// The database lives under the redten dot-directory and keeps the ask
// history so job ids and answers can be found again without the
// server. Schema changes are applied through embedded, numbered
// migration files.
package sqlite
