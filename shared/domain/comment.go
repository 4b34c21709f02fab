package domain

import "time"

type CommentDraft struct {
	Author  string
	Content string
}

type CommentCreationData struct {
	PostId  PostId
	Author  string
	Content string
}

type Comment struct {
	Id        CommentId `json:"id"`
	PostId    PostId    `json:"postId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Upvotes   int64     `json:"upvotes"`
	Downvotes int64     `json:"downvotes"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c Comment) Score() int64 {
	return c.Upvotes - c.Downvotes
}

type CommentView struct {
	Comment
	Score int64 `json:"score"`
}

func NewCommentView(c Comment) CommentView {
	return CommentView{Comment: c, Score: c.Score()}
}
