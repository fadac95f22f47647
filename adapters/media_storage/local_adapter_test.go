package media_storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chetan55567/portfolio-api/internal/application/service"
)

func TestSave_GeneratesUniqueNames(t *testing.T) {
	uploader, err := NewLocalAdapter(t.TempDir())
	require.NoError(t, err)

	pathA, err := uploader.Save(context.Background(), strings.NewReader("first"), "resume.pdf")
	require.NoError(t, err)
	pathB, err := uploader.Save(context.Background(), strings.NewReader("second"), "resume.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, pathA, pathB, "identical original filenames must not collide")
	assert.True(t, strings.HasPrefix(pathA, "/api/uploads/"))
	assert.True(t, strings.HasSuffix(pathA, ".pdf"))
}

func TestSaveOpenDelete_RoundTrip(t *testing.T) {
	uploader, err := NewLocalAdapter(t.TempDir())
	require.NoError(t, err)

	publicPath, err := uploader.Save(context.Background(), strings.NewReader("photo bytes"), "me.png")
	require.NoError(t, err)

	filename := strings.TrimPrefix(publicPath, "/api/uploads/")
	file, err := uploader.Open(filename)
	require.NoError(t, err)
	defer file.Close()

	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "photo bytes", string(content))

	require.NoError(t, uploader.Delete(context.Background(), filename))
	_, err = uploader.Open(filename)
	assert.ErrorIs(t, err, service.ErrFileNotFound)
}

func TestOpen_UnknownFile(t *testing.T) {
	uploader, err := NewLocalAdapter(t.TempDir())
	require.NoError(t, err)

	_, err = uploader.Open("does-not-exist.png")
	assert.ErrorIs(t, err, service.ErrFileNotFound)
}

func TestOpen_RejectsTraversal(t *testing.T) {
	uploader, err := NewLocalAdapter(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{
		"../profile.json",
		"../../etc/passwd",
		"a/b.png",
		".hidden",
		"",
	} {
		_, err := uploader.Open(name)
		assert.ErrorIs(t, err, service.ErrFileNotFound, "filename %q", name)

		err = uploader.Delete(context.Background(), name)
		assert.ErrorIs(t, err, service.ErrFileNotFound, "filename %q", name)
	}
}
