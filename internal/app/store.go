package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jbeshir/content-ratings/internal/datasources/mysql"
	"github.com/jbeshir/content-ratings/internal/datasources/sqlite"
	"github.com/jbeshir/content-ratings/internal/datasources/sqlstore"
)

// Store is an open database with the repository over it.
type Store struct {
	*sqlstore.Repository

	db      *sql.DB
	migrate func(context.Context, *sql.DB) error
}

// OpenStore connects to the database named by STORAGE_DRIVER.
func OpenStore(ctx context.Context) (*Store, error) {
	switch driver := MustGetEnvAsString(ctx, "STORAGE_DRIVER"); driver {
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		return &Store{Repository: mysql.New(db), db: db, migrate: mysql.Migrate}, nil
	case "sqlite":
		db, err := sqlite.Open(ctx, MustGetEnvAsString(ctx, "SQLITE_PATH"))
		if err != nil {
			return nil, fmt.Errorf("opening SQLite: %w", err)
		}
		return &Store{Repository: sqlite.New(db), db: db, migrate: sqlite.Migrate}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver [%s]", driver)
	}
}

// Migrate creates any missing tables.
func (s *Store) Migrate(ctx context.Context) error {
	return s.migrate(ctx, s.db)
}

func (s *Store) Close() error {
	return s.db.Close()
}
