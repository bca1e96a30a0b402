package viewer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tungetti/teelog/internal/errors"
	testutil "github.com/tungetti/teelog/internal/testing"
)

func TestListLogFiles_NewestFirst(t *testing.T) {
	names := testutil.LogNames(testutil.BaseTime, 3)
	dir := testutil.LogDirWithFiles(t, append(names, testutil.MalformedLogNames...)...)

	files, err := ListLogFiles(dir)

	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, names[2], files[0].Name)
	assert.Equal(t, names[0], files[2].Name)
	assert.Equal(t, filepath.Join(dir, names[2]), files[0].Path)
}

func TestLatest(t *testing.T) {
	names := testutil.LogNames(testutil.BaseTime, 4)
	dir := testutil.LogDirWithFiles(t, names...)

	latest, err := Latest(dir)

	require.NoError(t, err)
	assert.Equal(t, names[3], latest.Name)
	assert.Positive(t, latest.Size)
}

func TestLatest_Empty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	_, err := Latest(dir)

	testutil.AssertErrorCode(t, err, errors.NotFound)
	assert.ErrorIs(t, err, errors.ErrNoLogFiles)
}

func TestListLogFiles_MissingDir(t *testing.T) {
	_, err := ListLogFiles(filepath.Join(t.TempDir(), "none"))
	testutil.AssertErrorCode(t, err, errors.FileSystem)
}
