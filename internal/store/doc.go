// Package store defines the persistence interfaces and error taxonomy
// the rest of the application depends on. Implementations live under
// internal/platform; services only ever see these interfaces, keeping
// the business logic independent of the database technology.
package store
