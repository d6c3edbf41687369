package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jbeshir/content-ratings/internal/datasources/sqlstore"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT NOT NULL PRIMARY KEY,
		display_name VARCHAR(250) NOT NULL DEFAULT '',
		email VARCHAR(100) NOT NULL DEFAULT '',
		auth_subject VARCHAR(191) NULL UNIQUE,
		role VARCHAR(20) NOT NULL DEFAULT 'subscriber'
	) DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS content_items (
		id BIGINT NOT NULL PRIMARY KEY,
		type VARCHAR(20) NOT NULL DEFAULT 'post',
		title TEXT NOT NULL,
		body LONGTEXT NOT NULL,
		author_id BIGINT NOT NULL DEFAULT 0,
		published_at BIGINT NOT NULL DEFAULT 0,
		KEY type_idx (type)
	) DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS categories (
		id BIGINT NOT NULL PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		slug VARCHAR(191) NOT NULL UNIQUE
	) DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS tags (
		id BIGINT NOT NULL PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		slug VARCHAR(191) NOT NULL UNIQUE
	) DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS content_categories (
		content_id BIGINT NOT NULL,
		category_id BIGINT NOT NULL,
		PRIMARY KEY (content_id, category_id),
		KEY category_idx (category_id)
	)`,
	`CREATE TABLE IF NOT EXISTS content_tags (
		content_id BIGINT NOT NULL,
		tag_id BIGINT NOT NULL,
		PRIMARY KEY (content_id, tag_id),
		KEY tag_idx (tag_id)
	)`,
	`CREATE TABLE IF NOT EXISTS content_meta (
		content_id BIGINT NOT NULL,
		meta_key VARCHAR(191) NOT NULL,
		meta_value LONGTEXT NOT NULL,
		PRIMARY KEY (content_id, meta_key),
		KEY meta_key_idx (meta_key)
	) DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS options (
		option_key VARCHAR(191) NOT NULL PRIMARY KEY,
		option_value LONGTEXT NOT NULL
	) DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS api_tokens (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		token_hash CHAR(64) NOT NULL UNIQUE,
		token_prefix VARCHAR(16) NOT NULL,
		name VARCHAR(200) NULL,
		created_at BIGINT NOT NULL,
		last_used_at BIGINT NULL,
		expires_at BIGINT NULL,
		revoked_at BIGINT NULL,
		KEY user_idx (user_id)
	)`,
}

// Migrate creates any missing tables.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying MySQL schema: %w", err)
		}
	}
	return nil
}

func New(db *sql.DB) *sqlstore.Repository {
	return sqlstore.New(db, sqlstore.MySQL)
}
