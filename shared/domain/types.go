package domain

type (
	PostId    = int64
	CommentId = int64

	PostTitle = string
	Markdown  = string
	Palette   = []string
	Tags      = []string
)

const (
	DefaultPostAuthor    = "Anonymous Dreamer"
	DefaultCommentAuthor = "Appreciative Visitor"
)
