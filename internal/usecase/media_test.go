package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"philatelysamaaj/pkg/errors"
)

func TestMediaKind(t *testing.T) {
	cases := map[string]string{
		"image/png":       "image",
		"IMAGE/PNG":       "image",
		"Video/MP4":       "video",
		"application/pdf": "file",
	}
	for in, want := range cases {
		assert.Equal(t, want, MediaKind(in), in)
	}
}

func TestMediaStore_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("image type is case insensitive", func(t *testing.T) {
		files := &fakeFiles{}
		store := mediaStore{files: files}

		got, err := store.upload(ctx, &MediaUpload{Reader: stringsReader("img"), ContentType: "IMAGE/PNG", Size: 3}, FolderCatalog, true)
		require.NoError(t, err)
		assert.NotEmpty(t, got.URL)
		assert.Equal(t, []string{FolderCatalog}, files.uploads)
	})

	t.Run("images only rejects documents", func(t *testing.T) {
		store := mediaStore{files: &fakeFiles{}}
		_, err := store.upload(ctx, &MediaUpload{Reader: stringsReader("pdf"), ContentType: "application/pdf", Size: 3}, FolderCatalog, true)
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
	})

	t.Run("nil upload is a no-op", func(t *testing.T) {
		got, err := mediaStore{files: &fakeFiles{}}.upload(ctx, nil, FolderCatalog, true)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
