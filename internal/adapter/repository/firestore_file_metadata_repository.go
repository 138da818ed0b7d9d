package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/pkg/errors"
	"philatelysamaaj/pkg/logger"
)

type firestoreFileMetadataRepository struct {
	client *firestore.Client
}

func NewFirestoreFileMetadataRepository(client *firestore.Client) repository.FileMetadataRepository {
	return &firestoreFileMetadataRepository{
		client: client,
	}
}

func (r *firestoreFileMetadataRepository) Create(ctx context.Context, metadata *entity.FileMetadata) error {
	ref := r.client.Collection(fileMetadataCollection).NewDoc()
	if metadata.ID != "" {
		ref = r.client.Collection(fileMetadataCollection).Doc(metadata.ID)
	}
	metadata.ID = ref.ID

	if _, err := ref.Set(ctx, metadata); err != nil {
		return errors.Internal("Failed to create file metadata", err)
	}
	return nil
}

func (r *firestoreFileMetadataRepository) GetByID(ctx context.Context, id string) (*entity.FileMetadata, error) {
	doc, err := r.client.Collection(fileMetadataCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, getError("File metadata", err)
	}

	var metadata entity.FileMetadata
	if err := doc.DataTo(&metadata); err != nil {
		return nil, errors.Internal("Failed to parse file metadata", err)
	}

	return &metadata, nil
}

func (r *firestoreFileMetadataRepository) ListByUploader(ctx context.Context, userID string, limit, offset int) ([]*entity.FileMetadata, int64, error) {
	query := r.client.Collection(fileMetadataCollection).
		Where("uploadedBy", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count file metadata", err)
	}
	total := int64(len(countDocs))

	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var files []*entity.FileMetadata
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list file metadata", err)
		}

		var metadata entity.FileMetadata
		if err := doc.DataTo(&metadata); err != nil {
			logger.Warn("skipping malformed file metadata %s: %v", doc.Ref.ID, err)
			continue
		}
		files = append(files, &metadata)
	}

	return files, total, nil
}

func (r *firestoreFileMetadataRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(fileMetadataCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete file metadata", err)
	}
	return nil
}
