package usecase

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository/mocks"
	"philatelysamaaj/pkg/errors"
)

func TestSanitizeFolder(t *testing.T) {
	cases := map[string]string{
		"":                 "uploads",
		"  Post-Media ":    "post-media",
		"../../etc/passwd": "etc/passwd",
		"stamps/2024":      "stamps/2024",
		"$$$":              "uploads",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFolder(in), in)
	}
}

func TestFileUseCase_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFileMetadataRepository(ctrl)
	files := &fakeFiles{}
	uc := NewFileUseCase(repo, files, 1024)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, m *entity.FileMetadata) error {
		m.ID = "f1"
		return nil
	})

	got, err := uc.Upload(context.Background(), "u1", "Stamps", &MediaUpload{
		Reader: stringsReader("pdfdata"), Filename: "cert.pdf", ContentType: "application/pdf", Size: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, "f1", got.ID)
	assert.Equal(t, "stamps", got.Folder)
	assert.Equal(t, int64(7), got.FileSize)
	assert.Equal(t, []string{"stamps"}, files.uploads)

	_, err = uc.Upload(context.Background(), "u1", "", &MediaUpload{
		Reader: stringsReader("x"), ContentType: "application/zip", Size: 1,
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.Upload(context.Background(), "u1", "", &MediaUpload{
		Reader: stringsReader("x"), ContentType: "image/png", Size: 4096,
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestFileUseCase_Upload_MetadataFailureRemovesObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFileMetadataRepository(ctrl)
	files := &fakeFiles{}
	uc := NewFileUseCase(repo, files, 0)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stderrors.New("firestore unavailable"))

	got, err := uc.Upload(context.Background(), "u1", "stamps", &MediaUpload{
		Reader: stringsReader("png"), Filename: "a.png", ContentType: "image/png", Size: 3,
	})
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"), "got %v", err)
	assert.Equal(t, []string{"stamps/object"}, files.deleted)
}

func TestFileUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFileMetadataRepository(ctrl)
	uc := NewFileUseCase(repo, &fakeFiles{}, 0)
	ctx := context.Background()

	meta := &entity.FileMetadata{ID: "f1", UploadedBy: "owner", ObjectName: "uploads/x.png"}
	repo.EXPECT().GetByID(gomock.Any(), "f1").Return(meta, nil).AnyTimes()

	err := uc.Delete(ctx, "f1", "stranger", false)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	repo.EXPECT().Delete(gomock.Any(), "f1").Return(nil).Times(2)
	require.NoError(t, uc.Delete(ctx, "f1", "owner", false))
	require.NoError(t, uc.Delete(ctx, "f1", "admin", true))
}
