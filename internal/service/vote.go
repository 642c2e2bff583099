package service

import (
	"github.com/suraksha-dev/suraksha/shared/domain"
)

// to mock service in tests
type VoteService interface {
	Vote(forumId domain.ForumId, kind domain.PostKind, postId domain.PostId, vote domain.VoteKind) (likes, dislikes int, err error)
	VotePoll(forumId domain.ForumId, discussionId, optionId domain.PostId, voter domain.UserId) ([]domain.PollOption, error)
}

type Vote struct {
	storage VoteStorage
}

type VoteStorage interface {
	Vote(forumId domain.ForumId, kind domain.PostKind, postId domain.PostId, vote domain.VoteKind) (likes, dislikes int, err error)
	VotePoll(forumId domain.ForumId, discussionId, optionId domain.PostId, voter domain.UserId) ([]domain.PollOption, error)
}

func NewVote(storage VoteStorage) VoteService {
	return &Vote{storage}
}

func (v *Vote) Vote(forumId domain.ForumId, kind domain.PostKind, postId domain.PostId, vote domain.VoteKind) (int, int, error) {
	return v.storage.Vote(forumId, kind, postId, vote)
}

func (v *Vote) VotePoll(forumId domain.ForumId, discussionId, optionId domain.PostId, voter domain.UserId) ([]domain.PollOption, error) {
	return v.storage.VotePoll(forumId, discussionId, optionId, voter)
}
