// Package entity defines request-scoped view models for the web layer.
// The derived fields (brief preview, title, parent content) are display-only
// and never persisted.
package entity

import (
	"strings"

	"github.com/fabre752/multidiary/database/model"
)

const (
	briefWordLimit = 7
	titleRuneLimit = 15
	ellipsis       = "..."
)

// PostView is a post with its home-page preview attached.
type PostView struct {
	model.Post
	Brief string
}

// CommentView is a comment carrying the content of its parent post for
// profile rendering.
type CommentView struct {
	model.Comment
	ParentContent string
}

// BriefContent returns the content unchanged when it has at most seven
// whitespace-delimited words, otherwise the first seven words joined by
// single spaces with an ellipsis suffix.
func BriefContent(content string) string {
	words := strings.Fields(content)
	if len(words) <= briefWordLimit {
		return content
	}
	return strings.Join(words[:briefWordLimit], " ") + ellipsis
}

// PostTitle returns the content unchanged when it is at most fifteen
// characters long, otherwise the first fifteen characters with an ellipsis
// suffix.
func PostTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= titleRuneLimit {
		return content
	}
	return string(runes[:titleRuneLimit]) + ellipsis
}

// NewPostView attaches the brief preview to a fetched post.
func NewPostView(post model.Post) PostView {
	return PostView{Post: post, Brief: BriefContent(post.Content)}
}

// NewPostViews maps a fetched post list to views, preserving order.
func NewPostViews(posts []model.Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, NewPostView(post))
	}
	return views
}
