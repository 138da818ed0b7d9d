package entity

import (
	"slices"
	"time"
)

type VoteType string

const (
	VoteLike    VoteType = "like"
	VoteDislike VoteType = "dislike"
)

type Reply struct {
	UserID    string    `json:"user_id" firestore:"userId"`
	UserName  string    `json:"user_name" firestore:"userName"`
	Content   string    `json:"content" firestore:"content"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

type Post struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	UserName  string    `json:"user_name" firestore:"userName"`
	Content   string    `json:"content" firestore:"content"`
	MediaURL  string    `json:"media_url,omitempty" firestore:"mediaUrl,omitempty"`
	MediaType string    `json:"media_type,omitempty" firestore:"mediaType,omitempty"`
	Likes     []string  `json:"likes" firestore:"likes"`
	Dislikes  []string  `json:"dislikes" firestore:"dislikes"`
	Replies   []Reply   `json:"replies" firestore:"replies"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ApplyVote toggles the user's vote. Voting the same way twice restores the
// original state, and a like always clears a dislike (and vice versa).
func (p *Post) ApplyVote(userID string, vote VoteType) error {
	if p.UserID == userID {
		return ErrSelfVote
	}

	switch vote {
	case VoteLike:
		p.Likes, p.Dislikes = toggleVote(p.Likes, p.Dislikes, userID)
	case VoteDislike:
		p.Dislikes, p.Likes = toggleVote(p.Dislikes, p.Likes, userID)
	default:
		return ErrInvalidVote
	}
	return nil
}

func toggleVote(target, opposite []string, userID string) ([]string, []string) {
	opposite = remove(opposite, userID)
	if slices.Contains(target, userID) {
		return remove(target, userID), opposite
	}
	return append(target, userID), opposite
}

func remove(set []string, userID string) []string {
	out := make([]string, 0, len(set))
	for _, id := range set {
		if id != userID {
			out = append(out, id)
		}
	}
	return out
}

func (p *Post) AddReply(r Reply) {
	p.Replies = append(p.Replies, r)
	p.UpdatedAt = r.CreatedAt
}

func (p *Post) LikeCount() int    { return len(p.Likes) }
func (p *Post) DislikeCount() int { return len(p.Dislikes) }
