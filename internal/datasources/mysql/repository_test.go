package mysql

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jbeshir/content-ratings/internal/datasources/sqlstore"
	"github.com/jbeshir/content-ratings/internal/datasources/sqlstore/sqlstoretest"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"
)

func TestRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping MySQL integration tests in short mode")
	}

	ctx := context.Background()
	container, err := tcmysql.Run(ctx, "mysql:8.0.36",
		tcmysql.WithDatabase("ratings"),
		tcmysql.WithUsername("ratings"),
		tcmysql.WithPassword("ratings"),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := Connect(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db))

	sqlstoretest.RunRepositoryTests(t, func(t *testing.T) *sqlstore.Repository {
		truncateAll(t, db)
		return New(db)
	})
}

func truncateAll(t *testing.T, db *sql.DB) {
	t.Helper()

	for _, table := range []string{
		"api_tokens", "options", "content_meta", "content_tags", "content_categories",
		"tags", "categories", "content_items", "users",
	} {
		_, err := db.ExecContext(context.Background(), "DELETE FROM "+table)
		require.NoError(t, err)
	}
}
