package usecase

import (
	"context"
	"strings"
	"time"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository"
	"philatelysamaaj/internal/domain/service"
	"philatelysamaaj/pkg/errors"
)

const (
	EventPostCreated = "post.created"
	EventPostUpdated = "post.updated"
	EventPostDeleted = "post.deleted"
)

type ForumUseCase struct {
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	publisher EventPublisher
	limiter   RateLimiter
	media     mediaStore
	now       func() time.Time
}

func NewForumUseCase(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	publisher EventPublisher,
	limiter RateLimiter,
	files service.FileUploadService,
	maxUploadBytes int64,
) *ForumUseCase {
	return &ForumUseCase{
		postRepo:  postRepo,
		userRepo:  userRepo,
		publisher: publisher,
		limiter:   limiter,
		media:     mediaStore{files: files, maxBytes: maxUploadBytes},
		now:       time.Now,
	}
}

func (uc *ForumUseCase) authorName(ctx context.Context, userID string) (string, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.DisplayName(), nil
}

func (uc *ForumUseCase) CreatePost(ctx context.Context, userID, content string, media *MediaUpload) (*entity.Post, error) {
	if strings.TrimSpace(content) == "" && media == nil {
		return nil, errors.BadRequest("Post content or media is required", nil)
	}
	if ok, wait := uc.limiter.Allow(userID, ActionCreatePost); !ok {
		return nil, errors.TooManyRequests("post", wait)
	}

	name, err := uc.authorName(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	post := &entity.Post{
		UserID:    userID,
		UserName:  name,
		Content:   content,
		Likes:     []string{},
		Dislikes:  []string{},
		Replies:   []entity.Reply{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	uploaded, err := uc.media.upload(ctx, media, FolderPostMedia, false)
	if err != nil {
		return nil, err
	}
	if uploaded != nil {
		post.MediaURL = uploaded.URL
		post.MediaType = MediaKind(media.ContentType)
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	uc.publisher.Publish(TopicPosts, EventPostCreated, post)
	return post, nil
}

func (uc *ForumUseCase) GetPost(ctx context.Context, id string) (*entity.Post, error) {
	return uc.postRepo.GetByID(ctx, id)
}

func (uc *ForumUseCase) ListPosts(ctx context.Context, limit, offset int) ([]*entity.Post, int64, error) {
	return uc.postRepo.List(ctx, limit, offset)
}

func (uc *ForumUseCase) EditPost(ctx context.Context, id, userID, content string) (*entity.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.BadRequest("Post content is required", nil)
	}

	now := uc.now()
	post, err := uc.postRepo.Mutate(ctx, id, func(p *entity.Post) error {
		if p.UserID != userID {
			return errors.Forbidden("Only the author can edit this post", nil)
		}
		p.Content = content
		p.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.Publish(TopicPosts, EventPostUpdated, post)
	return post, nil
}

func (uc *ForumUseCase) DeletePost(ctx context.Context, id, userID string) error {
	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return errors.Forbidden("Only the author can delete this post", nil)
	}

	if err := uc.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.publisher.Publish(TopicPosts, EventPostDeleted, map[string]string{"id": id})
	return nil
}

func (uc *ForumUseCase) Reply(ctx context.Context, postID, userID, content string) (*entity.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.BadRequest("Reply content is required", nil)
	}
	if ok, wait := uc.limiter.Allow(userID, ActionCreatePost); !ok {
		return nil, errors.TooManyRequests("reply", wait)
	}

	name, err := uc.authorName(ctx, userID)
	if err != nil {
		return nil, err
	}

	reply := entity.Reply{
		UserID:    userID,
		UserName:  name,
		Content:   content,
		CreatedAt: uc.now(),
	}
	post, err := uc.postRepo.Mutate(ctx, postID, func(p *entity.Post) error {
		p.AddReply(reply)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.Publish(TopicPosts, EventPostUpdated, post)
	return post, nil
}

// Vote toggles a like or dislike. The self-vote check runs against the stored
// post inside the transaction.
func (uc *ForumUseCase) Vote(ctx context.Context, postID, userID string, vote entity.VoteType) (*entity.Post, error) {
	if ok, wait := uc.limiter.Allow(userID, ActionVote); !ok {
		return nil, errors.TooManyRequests("vote", wait)
	}

	now := uc.now()
	post, err := uc.postRepo.Mutate(ctx, postID, func(p *entity.Post) error {
		if err := p.ApplyVote(userID, vote); err != nil {
			return err
		}
		p.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, domainError(err)
	}

	uc.publisher.Publish(TopicPosts, EventPostUpdated, post)
	return post, nil
}
