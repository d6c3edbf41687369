package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFixture = `
settings:
  rating_scale: 10
users:
  - id: 1
    display_name: Ada
    email: ada@example.com
    role: editor
categories:
  - id: 5
    name: Reviews
    slug: reviews
tags:
  - id: 9
    name: Go
    slug: go
content:
  - id: 100
    title: First
    author_id: 1
    categories: [5]
    tags: [9]
    rating: 7
  - id: 101
    title: Second
    author_id: 1
    rating: 9
  - id: 102
    title: Unrated
    author_id: 1
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRatingsctl_SQLite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "ratings.db"))

	fixturePath := filepath.Join(dir, "fixture.yaml")
	require.NoError(t, os.WriteFile(fixturePath, []byte(testFixture), 0o600))

	out, err := runCLI(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "Schema up to date.")

	out, err = runCLI(t, "seed", fixturePath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 users, 1 categories, 1 tags, 3 items and 2 ratings.")

	out, err = runCLI(t, "top")
	require.NoError(t, err)
	assert.Regexp(t, `(?s)101\s+9 / 10\s+Second.*100\s+7 / 10\s+First\s+Reviews`, out)
	assert.NotContains(t, out, "Unrated")

	out, err = runCLI(t, "top", "--tag", "go")
	require.NoError(t, err)
	assert.Contains(t, out, "First")
	assert.NotContains(t, out, "Second")

	out, err = runCLI(t, "top", "--category", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "No top-rated posts found for the selected filters.")

	out, err = runCLI(t, "token", "create", "--user", "1", "--name", "ci")
	require.NoError(t, err)
	assert.Contains(t, out, "Token:    ratings_api|")
	tokenID := strings.TrimSpace(strings.TrimPrefix(strings.SplitN(out, "\n", 2)[0], "Token ID:"))

	out, err = runCLI(t, "token", "list", "--user", "1")
	require.NoError(t, err)
	assert.Regexp(t, tokenID+`\s+\S+\s+ci\s+true`, out)

	out, err = runCLI(t, "token", "revoke", "--user", "1", tokenID)
	require.NoError(t, err)
	assert.Contains(t, out, "revoked")

	_, err = runCLI(t, "token", "revoke", "--user", "1", tokenID)
	assert.Error(t, err)
}

func TestRatingsctl_SeedRejectsOutOfRangeRating(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "ratings.db"))

	fixturePath := filepath.Join(dir, "fixture.yaml")
	require.NoError(t, os.WriteFile(fixturePath, []byte(`
settings:
  rating_scale: 5
content:
  - id: 1
    title: Too good
    rating: 7
`), 0o600))

	_, err := runCLI(t, "seed", "--migrate", fixturePath)
	assert.ErrorContains(t, err, "content [1]")
}

func TestRatingsctl_TopClampsToCurrentScale(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "ratings.db"))

	fixturePath := filepath.Join(dir, "fixture.yaml")
	require.NoError(t, os.WriteFile(fixturePath, []byte(testFixture), 0o600))
	_, err := runCLI(t, "seed", "--migrate", fixturePath)
	require.NoError(t, err)

	rescalePath := filepath.Join(dir, "rescale.yaml")
	require.NoError(t, os.WriteFile(rescalePath, []byte("settings:\n  rating_scale: 5\n"), 0o600))
	_, err = runCLI(t, "seed", rescalePath)
	require.NoError(t, err)

	out, err := runCLI(t, "top")
	require.NoError(t, err)
	assert.Regexp(t, `101\s+5 / 5\s+Second`, out)
	assert.NotContains(t, out, "9 / 5")
	assert.NotContains(t, out, "7 / 5")
}

func TestRatingsctl_TokenCreateRequiresUser(t *testing.T) {
	_, err := runCLI(t, "token", "create")
	assert.Error(t, err)
}
