package domain

type (
	ForumId = string
	PostId  = string
	UserId  = string

	Tags = []string
)

// PostKind discriminates the three mutable post types when a caller
// addresses one by id.
type PostKind string

const (
	KindNote       PostKind = "note"
	KindDiscussion PostKind = "discussion"
	KindReply      PostKind = "reply"
)

// VoteKind is the like/dislike axis. Likes and dislikes are independent
// counters: there is no undo and no mutual exclusivity.
type VoteKind string

const (
	VoteLike    VoteKind = "like"
	VoteDislike VoteKind = "dislike"
)

// PostAuthor identifies who wrote a post, for reply notifications.
type PostAuthor struct {
	Id   UserId
	Name string
}
