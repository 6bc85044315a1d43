package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZygmaCore/orbit/lib/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	logger.Init(false)
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen_CreatesBuckets(t *testing.T) {
	db := setupTestDB(t)

	for _, bucket := range []string{BucketPlatforms, BucketAppSettings, BucketPlaySessions} {
		_, err := db.Keys(bucket)
		assert.NoError(t, err, "bucket %s should exist after open", bucket)
	}
}

func TestSetGetDelete(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Set(BucketAppSettings, "config", []byte(`{"base_url":"http://x"}`)))

	value, err := db.Get(BucketAppSettings, "config")
	require.NoError(t, err)
	assert.Equal(t, `{"base_url":"http://x"}`, string(value))

	require.NoError(t, db.Delete(BucketAppSettings, "config"))

	value, err = db.Get(BucketAppSettings, "config")
	require.NoError(t, err)
	assert.Nil(t, value, "deleted key should read as absent")
}

func TestGetAll(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Set(BucketPlatforms, "http://a", []byte("1")))
	require.NoError(t, db.Set(BucketPlatforms, "http://b", []byte("2")))

	entries, err := db.GetAll(BucketPlatforms)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, []byte("2"), entries["http://b"])
}

func TestGet_UnknownBucket(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.Get("no_such_bucket", "key")
	assert.Error(t, err)
}

func TestOpen_SecondInstanceLocked(t *testing.T) {
	dir := t.TempDir()

	db, err := Open(dir)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = Open(dir)
	assert.ErrorIs(t, err, ErrDatabaseLocked)
}
