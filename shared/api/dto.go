package api

import (
	"time"

	"github.com/goodways/goodways/shared/domain"
)

// Request DTOs. Every field is optional on the wire; content rules live in
// the validation package so all violations are reported together.

type CreatePostRequest struct {
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Content      string   `json:"content"`
	Author       string   `json:"author"`
	Mood         string   `json:"mood"`
	MediaUrl     string   `json:"mediaUrl"`
	ColorPalette []string `json:"colorPalette"`
	Tags         []string `json:"tags"`
}

func (r CreatePostRequest) Draft() domain.PostDraft {
	return domain.PostDraft{
		Title:        r.Title,
		Summary:      r.Summary,
		Content:      r.Content,
		Author:       r.Author,
		Mood:         r.Mood,
		MediaUrl:     r.MediaUrl,
		ColorPalette: r.ColorPalette,
		Tags:         r.Tags,
	}
}

type CreateCommentRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

func (r CreateCommentRequest) Draft() domain.CommentDraft {
	return domain.CommentDraft{Author: r.Author, Content: r.Content}
}

type VoteRequest struct {
	Direction string `json:"direction"`
}

// Response DTOs

type FeedMeta struct {
	Count int `json:"count"`
}

type FeedResponse struct {
	Posts []domain.PostView `json:"posts"`
	Meta  FeedMeta          `json:"meta"`
}

type PostResponse struct {
	Post domain.PostView `json:"post"`
}

type PostDetailResponse struct {
	Post     domain.PostView      `json:"post"`
	Comments []domain.CommentView `json:"comments"`
}

type CommentResponse struct {
	Comment domain.CommentView `json:"comment"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type AdminTokenResponse struct {
	Token string `json:"token"`
}
