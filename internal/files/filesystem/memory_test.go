package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadDir(t *testing.T) {
	m := NewMemoryFileSystem(map[string][]byte{
		"data/drivers.csv":     []byte("id\n1\n"),
		"data/trips.csv":       []byte("id\n2\n"),
		"data/nested/more.csv": []byte("id\n3\n"),
		"other/riders.csv":     []byte("id\n4\n"),
	})

	infos, err := m.ReadDir("data")
	require.NoError(t, err)
	require.Len(t, infos, 3)

	// Sorted: drivers.csv, nested (dir), trips.csv
	assert.Equal(t, "drivers.csv", infos[0].Name())
	assert.False(t, infos[0].IsDir())
	assert.Equal(t, int64(5), infos[0].Size())
	assert.Equal(t, "nested", infos[1].Name())
	assert.True(t, infos[1].IsDir())
	assert.Equal(t, "trips.csv", infos[2].Name())
}

func TestMemoryFileSystem_ReadDir_NotExist(t *testing.T) {
	m := NewMemoryFileSystem(nil)
	_, err := m.ReadDir("missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	m := NewMemoryFileSystem(map[string][]byte{"data/drivers.csv": []byte("abc")})

	content, err := m.ReadFile("data/drivers.csv")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), content)

	_, err = m.ReadFile("data/missing.csv")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	m := NewMemoryFileSystem(map[string][]byte{"data/drivers.csv": []byte("abc")})

	info, err := m.Stat("data/drivers.csv")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(3), info.Size())

	info, err = m.Stat("data")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = m.Stat("elsewhere")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
