package entity

import (
	"strings"
	"testing"

	"github.com/fabre752/multidiary/database/model"
)

func TestBriefContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "empty content unchanged",
			content:  "",
			expected: "",
		},
		{
			name:     "short content unchanged",
			content:  "hello world",
			expected: "hello world",
		},
		{
			name:     "exactly seven words unchanged",
			content:  "one two three four five six seven",
			expected: "one two three four five six seven",
		},
		{
			name:     "eight words truncated",
			content:  "one two three four five six seven eight",
			expected: "one two three four five six seven...",
		},
		{
			name:     "multiple spaces collapse in truncated preview",
			content:  "a  b   c d e f g h",
			expected: "a b c d e f g...",
		},
		{
			name:     "newlines count as word separators",
			content:  "a b c\nd e f\ng h",
			expected: "a b c d e f g...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BriefContent(tt.content); got != tt.expected {
				t.Errorf("BriefContent(%q) = %q, want %q", tt.content, got, tt.expected)
			}
		})
	}
}

func TestPostTitle(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "empty content unchanged",
			content:  "",
			expected: "",
		},
		{
			name:     "short content unchanged",
			content:  "hello",
			expected: "hello",
		},
		{
			name:     "exactly fifteen characters unchanged",
			content:  "123456789012345",
			expected: "123456789012345",
		},
		{
			name:     "sixteen characters truncated",
			content:  "1234567890123456",
			expected: "123456789012345...",
		},
		{
			name:     "multibyte characters counted as characters",
			content:  strings.Repeat("ä", 16),
			expected: strings.Repeat("ä", 15) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PostTitle(tt.content); got != tt.expected {
				t.Errorf("PostTitle(%q) = %q, want %q", tt.content, got, tt.expected)
			}
		})
	}
}

func TestNewPostViewsPreservesOrder(t *testing.T) {
	posts := []model.Post{
		{Id: 3, Content: "third"},
		{Id: 1, Content: "first"},
		{Id: 2, Content: "second"},
	}
	views := NewPostViews(posts)
	if len(views) != len(posts) {
		t.Fatalf("got %d views, want %d", len(views), len(posts))
	}
	for i := range posts {
		if views[i].Id != posts[i].Id {
			t.Errorf("view %d has id %d, want %d", i, views[i].Id, posts[i].Id)
		}
		if views[i].Brief != posts[i].Content {
			t.Errorf("view %d brief = %q, want %q", i, views[i].Brief, posts[i].Content)
		}
	}
}
