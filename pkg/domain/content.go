package domain

import (
	"time"

	"github.com/google/uuid"
)

// PostID uniquely identifies a blog post.
type PostID uuid.UUID

func (id PostID) String() string { return uuid.UUID(id).String() }

// PostStatus is the publication state of a blog post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
)

// Valid reports whether s is a known post status.
func (s PostStatus) Valid() bool {
	return s == PostStatusDraft || s == PostStatusPublished
}

// BlogPost is an article of the dealership blog.
type BlogPost struct {
	ID            PostID     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	CoverImageURL string     `json:"coverImageUrl"`
	Tags          []string   `json:"tags"`
	Status        PostStatus `json:"status"`
	PublishedAt   time.Time  `json:"publishedAt,omitzero"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// WebContent is an editable text block of the public website, addressed by
// section and key (e.g. "home" / "hero_title").
type WebContent struct {
	Section   string    `json:"section"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedBy *UserID   `json:"updatedBy,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}
