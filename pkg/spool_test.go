package pkg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type finding struct {
	File     string
	Function string
}

func TestSpool_AppendAndRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "findings.gob")

	spool, err := NewSpool[finding](path)
	require.NoError(t, err)

	defer func() { require.NoError(t, spool.Close()) }()

	require.NoError(t, spool.Append(finding{File: "a.py", Function: "test_one"}))
	require.NoError(t, spool.AppendBatch([]finding{
		{File: "b.py", Function: "test_two"},
		{File: "b.py", Function: "test_three"},
	}))

	assert.Equal(t, uint64(3), spool.Len())
	assert.Equal(t, path, spool.Path())

	var collected []finding
	err = spool.Range(func(_ uint64, item finding) error {
		collected = append(collected, item)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []finding{
		{File: "a.py", Function: "test_one"},
		{File: "b.py", Function: "test_two"},
		{File: "b.py", Function: "test_three"},
	}, collected)
}

func TestSpool_EmptyRange(t *testing.T) {
	spool, err := NewSpool[finding](filepath.Join(t.TempDir(), "empty.gob"))
	require.NoError(t, err)

	defer func() { require.NoError(t, spool.Close()) }()

	calls := 0
	require.NoError(t, spool.Range(func(uint64, finding) error {
		calls++
		return nil
	}))

	assert.Zero(t, calls)
}

func TestSpool_CloseIsIdempotent(t *testing.T) {
	spool, err := NewSpool[finding](filepath.Join(t.TempDir(), "close.gob"))
	require.NoError(t, err)

	require.NoError(t, spool.Close())
	require.NoError(t, spool.Close())
}
