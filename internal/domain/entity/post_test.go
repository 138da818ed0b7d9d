package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPost() *Post {
	return &Post{ID: "p1", UserID: "author", Likes: []string{}, Dislikes: []string{}}
}

func TestApplyVote(t *testing.T) {
	tests := []struct {
		name         string
		likes        []string
		dislikes     []string
		vote         VoteType
		wantLikes    []string
		wantDislikes []string
	}{
		{name: "like from neutral", likes: []string{}, dislikes: []string{}, vote: VoteLike, wantLikes: []string{"u"}, wantDislikes: []string{}},
		{name: "like again removes", likes: []string{"u"}, dislikes: []string{}, vote: VoteLike, wantLikes: []string{}, wantDislikes: []string{}},
		{name: "like clears dislike", likes: []string{}, dislikes: []string{"u"}, vote: VoteLike, wantLikes: []string{"u"}, wantDislikes: []string{}},
		{name: "dislike clears like", likes: []string{"u", "x"}, dislikes: []string{}, vote: VoteDislike, wantLikes: []string{"x"}, wantDislikes: []string{"u"}},
		{name: "dislike again removes", likes: []string{}, dislikes: []string{"u"}, vote: VoteDislike, wantLikes: []string{}, wantDislikes: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPost()
			p.Likes, p.Dislikes = tt.likes, tt.dislikes

			require.NoError(t, p.ApplyVote("u", tt.vote))
			assert.ElementsMatch(t, tt.wantLikes, p.Likes)
			assert.ElementsMatch(t, tt.wantDislikes, p.Dislikes)
		})
	}
}

func TestApplyVote_NeverInBothSets(t *testing.T) {
	p := newPost()
	sequence := []VoteType{VoteLike, VoteDislike, VoteDislike, VoteLike, VoteLike, VoteDislike}
	for _, v := range sequence {
		require.NoError(t, p.ApplyVote("u", v))
		assert.False(t, contains(p.Likes, "u") && contains(p.Dislikes, "u"))
	}
}

func TestApplyVote_DoubleToggleIsIdentity(t *testing.T) {
	for _, v := range []VoteType{VoteLike, VoteDislike} {
		p := newPost()
		p.Likes = []string{"other"}

		require.NoError(t, p.ApplyVote("u", v))
		require.NoError(t, p.ApplyVote("u", v))

		assert.Equal(t, []string{"other"}, p.Likes)
		assert.Empty(t, p.Dislikes)
	}
}

func TestApplyVote_SelfVoteRejected(t *testing.T) {
	p := newPost()
	p.Likes = []string{"x"}

	err := p.ApplyVote("author", VoteLike)
	assert.ErrorIs(t, err, ErrSelfVote)
	assert.Equal(t, []string{"x"}, p.Likes)
	assert.Empty(t, p.Dislikes)
}

func TestApplyVote_UnknownType(t *testing.T) {
	p := newPost()
	assert.ErrorIs(t, p.ApplyVote("u", VoteType("meh")), ErrInvalidVote)
}

func contains(set []string, id string) bool {
	for _, s := range set {
		if s == id {
			return true
		}
	}
	return false
}
