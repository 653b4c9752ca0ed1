package uploader

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Richard-Gidi/Ridewise/internal/files/filesystem"
	"github.com/Richard-Gidi/Ridewise/internal/logging"
	"github.com/Richard-Gidi/Ridewise/internal/storage"
	"github.com/Richard-Gidi/Ridewise/pkg/ridewise"
)

func newUploader(files map[string][]byte, store storage.ObjectStore) *Uploader {
	return New(filesystem.NewMemoryFileSystem(files), store, logging.NewNullLogger())
}

func TestUpload_CopiesCSVFilesBytewise(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	u := newUploader(map[string][]byte{
		"data/drivers.csv": []byte("id,name\n1,alice\n"),
		"data/trips.csv":   []byte("trip_id\n9\n"),
	}, store)

	report, err := u.Upload(ctx, "data", "datasets/")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Uploaded)
	assert.Equal(t, 0, report.Failed)

	got, err := store.Get(ctx, "datasets/drivers.csv")
	require.NoError(t, err)
	assert.Equal(t, []byte("id,name\n1,alice\n"), got)

	got, err = store.Get(ctx, "datasets/trips.csv")
	require.NoError(t, err)
	assert.Equal(t, []byte("trip_id\n9\n"), got)
}

func TestUpload_IgnoresNonCSVAndSubdirectories(t *testing.T) {
	store := storage.NewMemoryStore()
	u := newUploader(map[string][]byte{
		"data/drivers.csv":      []byte("id\n1\n"),
		"data/readme.txt":       []byte("not csv"),
		"data/nested/deep.csv":  []byte("id\n2\n"),
		"data/archive.csv.gz":   []byte("binary"),
		"other/unrelated.csv":   []byte("id\n3\n"),
	}, store)

	report, err := u.Upload(context.Background(), "data", "datasets/")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Uploaded)
	assert.Equal(t, 1, store.Len())
}

func TestUpload_CaseInsensitiveExtension(t *testing.T) {
	store := storage.NewMemoryStore()
	u := newUploader(map[string][]byte{"data/Drivers.CSV": []byte("id\n1\n")}, store)

	report, err := u.Upload(context.Background(), "data", "datasets/")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Uploaded)

	// The original filename is preserved in the key; only the loader
	// lowercases for table naming.
	_, err = store.Get(context.Background(), "datasets/Drivers.CSV")
	assert.NoError(t, err)
}

func TestUpload_SkipAndContinueOnFailure(t *testing.T) {
	store := storage.NewMemoryStore()
	store.FailPut = map[string]error{"datasets/bad.csv": errors.New("network down")}

	u := newUploader(map[string][]byte{
		"data/bad.csv":  []byte("id\n1\n"),
		"data/good.csv": []byte("id\n2\n"),
	}, store)

	report, err := u.Upload(context.Background(), "data", "datasets/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ridewise.ErrUploadFailed))

	// The failure of bad.csv did not stop good.csv from uploading
	assert.Equal(t, 1, report.Uploaded)
	assert.Equal(t, 1, report.Failed)
	_, getErr := store.Get(context.Background(), "datasets/good.csv")
	assert.NoError(t, getErr)

	require.Len(t, report.Files, 2)
	assert.Error(t, report.Files[0].Err) // bad.csv sorts first
	assert.NoError(t, report.Files[1].Err)
}

func TestUpload_MissingSourceDir(t *testing.T) {
	u := newUploader(nil, storage.NewMemoryStore())

	_, err := u.Upload(context.Background(), "missing", "datasets/")
	assert.True(t, errors.Is(err, ridewise.ErrSourceDirNotFound))
}

func TestUpload_SourcePathIsFile(t *testing.T) {
	u := newUploader(map[string][]byte{"data/drivers.csv": []byte("id\n1\n")}, storage.NewMemoryStore())

	_, err := u.Upload(context.Background(), "data/drivers.csv", "datasets/")
	assert.True(t, errors.Is(err, ridewise.ErrSourceDirNotFound))
}

func TestUpload_EmptyDirectoryIsNotAnError(t *testing.T) {
	u := newUploader(map[string][]byte{"data/readme.txt": []byte("x")}, storage.NewMemoryStore())

	report, err := u.Upload(context.Background(), "data", "datasets/")
	require.NoError(t, err)
	assert.Equal(t, 0, report.Uploaded)
	assert.Empty(t, report.Files)
}

func TestUpload_DeterministicOrder(t *testing.T) {
	store := storage.NewMemoryStore()
	u := newUploader(map[string][]byte{
		"data/zebra.csv": []byte("id\n1\n"),
		"data/alpha.csv": []byte("id\n2\n"),
		"data/mid.csv":   []byte("id\n3\n"),
	}, store)

	report, err := u.Upload(context.Background(), "data", "")
	require.NoError(t, err)
	require.Len(t, report.Files, 3)
	assert.Equal(t, "alpha.csv", report.Files[0].Name)
	assert.Equal(t, "mid.csv", report.Files[1].Name)
	assert.Equal(t, "zebra.csv", report.Files[2].Name)
}
