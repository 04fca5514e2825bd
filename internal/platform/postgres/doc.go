// Package postgres implements the storage interfaces defined in
// internal/store on PostgreSQL. It owns the connection pool, the
// embedded goose migrations, and the mapping between driver errors and
// the store error taxonomy.
package postgres
