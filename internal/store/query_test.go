package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/userfed/internal/domain/repository"
)

func TestRunQuery_NilDataSourceIsUnavailable(t *testing.T) {
	_, err := runQuery(context.Background(), nil, "list_all", "SELECT 1", nil, ReadRecords)
	require.Error(t, err)
	assert.True(t, repository.IsUnavailable(err))
}

func TestRunQuery_BadSQLIsQueryFailed(t *testing.T) {
	ds := openTestDB(t)
	_, err := runQuery(context.Background(), ds, "list_all", "SELECT FROM nothing", nil, ReadRecords)
	require.Error(t, err)
	assert.True(t, repository.IsQueryFailed(err))
}

func TestRunQuery_ClosedPoolIsUnavailable(t *testing.T) {
	ds := openTestDB(t)
	require.NoError(t, ds.Close())

	_, err := runQuery(context.Background(), ds, "count", "SELECT COUNT(*) FROM users", nil, readOptInt)
	require.Error(t, err)
	assert.True(t, repository.IsUnavailable(err))
}

func TestRunQuery_PaginatesBeforeExecuting(t *testing.T) {
	ds := openTestDB(t)
	seedUsers(t, ds, 5)

	records, err := runQuery(context.Background(), ds, "find_users",
		"SELECT username FROM users ORDER BY id",
		&repository.Pageable{Offset: 1, Limit: 2}, ReadRecords)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "user02", records[0]["username"])
	assert.Equal(t, "user03", records[1]["username"])
}

func TestRunQuery_BindsPositionalParams(t *testing.T) {
	ds := openTestDB(t)
	seedUsers(t, ds, 3)

	res, err := runQuery(context.Background(), ds, "find_password_hash",
		"SELECT username FROM users WHERE id = ?", nil, readOptString, 2)
	require.NoError(t, err)
	require.True(t, res.OK)
	assert.Equal(t, "user02", res.Val)
}

func TestRunQuery_NoRowsIsNotAnError(t *testing.T) {
	ds := openTestDB(t)

	res, err := runQuery(context.Background(), ds, "find_password_hash",
		"SELECT password FROM users WHERE username = ?", nil, readOptString, "ghost")
	require.NoError(t, err)
	assert.False(t, res.OK)
}
