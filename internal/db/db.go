// Package db defines the persistence port the repositories plug into.
package db

// DB is a generic database port so repositories are not tied to one
// driver. The GORM adapter is the production implementation; callers
// that cannot reach Postgres fall back to in-memory repositories and
// skip this port entirely.
type DB interface {
	Conn() any
}
