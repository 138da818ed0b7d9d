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

type firestorePostRepository struct {
	client *firestore.Client
}

func NewFirestorePostRepository(client *firestore.Client) repository.PostRepository {
	return &firestorePostRepository{
		client: client,
	}
}

func (r *firestorePostRepository) Create(ctx context.Context, post *entity.Post) error {
	ref := r.client.Collection(postsCollection).NewDoc()
	post.ID = ref.ID

	if _, err := ref.Set(ctx, post); err != nil {
		return errors.Internal("Failed to create post", err)
	}
	return nil
}

func (r *firestorePostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	doc, err := r.client.Collection(postsCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, getError("Post", err)
	}
	return decodePost(doc)
}

func (r *firestorePostRepository) List(ctx context.Context, limit, offset int) ([]*entity.Post, int64, error) {
	query := r.client.Collection(postsCollection).OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count posts", err)
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

	posts := make([]*entity.Post, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list posts", err)
		}

		post, err := decodePost(doc)
		if err != nil {
			logger.Warn("skipping malformed post %s: %v", doc.Ref.ID, err)
			continue
		}
		posts = append(posts, post)
	}

	return posts, total, nil
}

func (r *firestorePostRepository) Mutate(ctx context.Context, id string, fn repository.PostMutation) (*entity.Post, error) {
	ref := r.client.Collection(postsCollection).Doc(id)

	var (
		result *entity.Post
		fnErr  error
	)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		fnErr = nil
		doc, err := tx.Get(ref)
		if err != nil {
			return getError("Post", err)
		}

		post, err := decodePost(doc)
		if err != nil {
			return err
		}

		if err := fn(post); err != nil {
			fnErr = err
			return err
		}

		result = post
		return tx.Set(ref, post)
	})
	if fnErr != nil {
		return nil, fnErr
	}
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		return nil, errors.Internal("Failed to update post", err)
	}
	return result, nil
}

func (r *firestorePostRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(postsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete post", err)
	}
	return nil
}

func decodePost(doc *firestore.DocumentSnapshot) (*entity.Post, error) {
	var post entity.Post
	if err := doc.DataTo(&post); err != nil {
		return nil, errors.Internal("Failed to parse post", err)
	}
	post.ID = doc.Ref.ID
	if post.Likes == nil {
		post.Likes = []string{}
	}
	if post.Dislikes == nil {
		post.Dislikes = []string{}
	}
	if post.Replies == nil {
		post.Replies = []entity.Reply{}
	}
	return &post, nil
}
