package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteKV_RoundTrip(t *testing.T) {
	kv, err := OpenSQLiteKV(filepath.Join(t.TempDir(), "tabula.db"))
	require.NoError(t, err)
	defer kv.Close()

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("tasks-p1", []byte(`[]`)))
	require.NoError(t, kv.Set("tasks-p1", []byte(`[{"id":"t1"}]`)), "second write overwrites")

	value, ok, err := kv.Get("tasks-p1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"t1"}]`, string(value))

	require.NoError(t, kv.Set("projects", []byte(`[]`)))
	keys, err := kv.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"projects", "tasks-p1"}, keys)

	require.NoError(t, kv.Delete("tasks-p1"))
	_, ok, err = kv.Get("tasks-p1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenSQLiteKV_EmptyPath(t *testing.T) {
	_, err := OpenSQLiteKV("")
	require.Error(t, err)
}
