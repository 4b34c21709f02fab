package domain

import (
	"time"
)

// PostDraft is raw user input for a new post, before validation and sanitizing.
type PostDraft struct {
	Title        string
	Summary      string
	Content      Markdown
	Author       string
	Mood         string
	MediaUrl     string
	ColorPalette Palette
	Tags         Tags
}

// to iterate thru layers: service -> storage
type PostCreationData struct {
	Title           PostTitle
	Summary         string
	ContentMarkdown Markdown
	Author          string
	MediaUrl        string
	ColorPalette    Palette
	Mood            string
	Tags            Tags
}

type Post struct {
	Id              PostId    `json:"id"`
	Title           PostTitle `json:"title"`
	Summary         string    `json:"summary"`
	ContentMarkdown Markdown  `json:"contentMarkdown"`
	Author          string    `json:"author"`
	MediaUrl        string    `json:"mediaUrl"`
	ColorPalette    Palette   `json:"colorPalette"`
	Mood            string    `json:"mood"`
	Tags            Tags      `json:"tags"`
	Upvotes         int64     `json:"upvotes"`
	Downvotes       int64     `json:"downvotes"`
	CommentCount    int       `json:"commentCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Score is the net vote balance. It can be negative.
func (p Post) Score() int64 {
	return p.Upvotes - p.Downvotes
}

// PostView is a post with its derived fields attached. Derived fields are
// computed on every read and never stored.
type PostView struct {
	Post
	Score       int64   `json:"score"`
	HotScore    float64 `json:"hotScore"`
	ContentHtml string  `json:"contentHtml"`
}

type PostDetail struct {
	Post     PostView
	Comments []CommentView
}

// FeedQuery is what a feed listing asks for.
type FeedQuery struct {
	Sort   string
	Search string
	Mood   string
}

// FeedFilter selects the candidate set. Search and Mood are case-insensitive
// substring matches combined with AND; empty means no filter.
type FeedFilter struct {
	Search string
	Mood   string
	Limit  int
}
