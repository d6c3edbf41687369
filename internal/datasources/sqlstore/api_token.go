package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/content-ratings/internal/domain"
)

func (r *Repository) CreateAPIToken(
	ctx context.Context,
	id string, userID int64, tokenHash, tokenPrefix string,
	name *string,
	expiresAt *time.Time,
) error {
	var nameVal sql.NullString
	if name != nil {
		nameVal = sql.NullString{String: *name, Valid: true}
	}
	var expiresVal sql.NullInt64
	if expiresAt != nil {
		expiresVal = sql.NullInt64{Int64: expiresAt.Unix(), Valid: true}
	}

	ib := r.dialect.Flavor.NewInsertBuilder()
	ib.InsertInto("api_tokens")
	ib.Cols("id", "user_id", "token_hash", "token_prefix", "name", "created_at", "expires_at")
	ib.Values(id, userID, tokenHash, tokenPrefix, nameVal, time.Now().Unix(), expiresVal)

	query, args := ib.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("creating API token: %w", err)
	}
	return nil
}

var apiTokenCols = []string{
	"id", "user_id", "token_hash", "token_prefix", "name",
	"created_at", "last_used_at", "expires_at", "revoked_at",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAPIToken(row rowScanner) (domain.APIToken, error) {
	var (
		t                              domain.APIToken
		name                           sql.NullString
		createdAt                      int64
		lastUsedAt, expiresAt, revoked sql.NullInt64
	)
	if err := row.Scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.Prefix, &name,
		&createdAt, &lastUsedAt, &expiresAt, &revoked,
	); err != nil {
		return domain.APIToken{}, err
	}

	if name.Valid {
		t.Name = &name.String
	}
	t.CreatedAt = time.Unix(createdAt, 0).UTC()
	t.LastUsedAt = nullUnixToTime(lastUsedAt)
	t.ExpiresAt = nullUnixToTime(expiresAt)
	t.RevokedAt = nullUnixToTime(revoked)
	return t, nil
}

func (r *Repository) GetAPITokenByHash(ctx context.Context, tokenHash string) (domain.APIToken, error) {
	sb := r.dialect.Flavor.NewSelectBuilder()
	sb.Select(apiTokenCols...)
	sb.From("api_tokens")
	sb.Where(sb.Equal("token_hash", tokenHash))

	query, args := sb.Build()
	t, err := scanAPIToken(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.APIToken{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.APIToken{}, fmt.Errorf("getting API token: %w", err)
	}
	return t, nil
}

// ListUserAPITokens returns all of a user's tokens, newest first, including
// revoked and expired ones.
func (r *Repository) ListUserAPITokens(ctx context.Context, userID int64) ([]domain.APIToken, error) {
	sb := r.dialect.Flavor.NewSelectBuilder()
	sb.Select(apiTokenCols...)
	sb.From("api_tokens")
	sb.Where(sb.Equal("user_id", userID))
	sb.OrderBy("created_at DESC", "id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing API tokens: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tokens []domain.APIToken
	for rows.Next() {
		t, err := scanAPIToken(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning API token: %w", err)
		}
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing API tokens: %w", err)
	}
	return tokens, nil
}

// RevokeAPIToken marks one of a user's tokens revoked. It returns
// domain.ErrNotFound when the user has no such unrevoked token.
func (r *Repository) RevokeAPIToken(ctx context.Context, tokenID string, userID int64) error {
	ub := r.dialect.Flavor.NewUpdateBuilder()
	ub.Update("api_tokens")
	ub.Set(ub.Assign("revoked_at", time.Now().Unix()))
	ub.Where(
		ub.Equal("id", tokenID),
		ub.Equal("user_id", userID),
		ub.IsNull("revoked_at"),
	)

	query, args := ub.Build()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("revoking API token: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("revoking API token: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) UpdateAPITokenLastUsed(ctx context.Context, tokenID string) error {
	ub := r.dialect.Flavor.NewUpdateBuilder()
	ub.Update("api_tokens")
	ub.Set(ub.Assign("last_used_at", time.Now().Unix()))
	ub.Where(ub.Equal("id", tokenID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating API token last used: %w", err)
	}
	return nil
}

func (r *Repository) CountUserActiveAPITokens(ctx context.Context, userID int64) (int64, error) {
	sb := r.dialect.Flavor.NewSelectBuilder()
	sb.Select("COUNT(*)").From("api_tokens")
	sb.Where(
		sb.Equal("user_id", userID),
		sb.IsNull("revoked_at"),
		sb.Or(sb.IsNull("expires_at"), sb.GreaterThan("expires_at", time.Now().Unix())),
	)

	query, args := sb.Build()
	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting active API tokens: %w", err)
	}
	return count, nil
}

func nullUnixToTime(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(v.Int64, 0).UTC()
	return &t
}
