package repositories

import (
	"database/sql"

	"tasklists/database"
)

// BaseRepository provides shared database access that can be embedded in repositories.
type BaseRepository struct {
	db *database.Database
}

// NewBaseRepository creates a new BaseRepository with database access
func NewBaseRepository(database *database.Database) *BaseRepository {
	return &BaseRepository{
		db: database,
	}
}

// ReadDB returns the read connection pool for SELECT operations
func (b *BaseRepository) ReadDB() *sql.DB {
	return b.db.ReadDB()
}

// WriteDB returns the write-serialized connection for INSERT/UPDATE/DELETE operations
func (b *BaseRepository) WriteDB() *sql.DB {
	return b.db.WriteDB()
}

// WithTx executes a function within a write transaction
func (b *BaseRepository) WithTx(fn func(*sql.Tx) error) error {
	return b.db.WithTx(fn)
}
