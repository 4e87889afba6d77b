package storage

import (
	"context"
	"midcar/pkg/domain"
)

// PostFilter narrows a blog post list.
type PostFilter struct {
	Status domain.PostStatus
	Tag    string

	Page
}

// BlogStorage defines persistence of blog posts.
type BlogStorage interface {
	// StorePost inserts a post. A duplicate slug yields ErrDuplicate.
	StorePost(ctx context.Context, post domain.BlogPost) (*domain.BlogPost, error)
	UpdatePost(ctx context.Context, post domain.BlogPost) (*domain.BlogPost, error)
	PostByID(ctx context.Context, ID domain.PostID) (*domain.BlogPost, error)
	PostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	// Posts returns a page of posts, newest publication (then creation) first.
	Posts(ctx context.Context, filter PostFilter) (List[domain.BlogPost], error)
	DeletePost(ctx context.Context, ID domain.PostID) (bool, error)
	// SlugsWithPrefix returns all slugs equal to prefix or starting with prefix + "-".
	SlugsWithPrefix(ctx context.Context, prefix string) ([]string, error)
}

// ContentStorage defines persistence of editable website text blocks.
type ContentStorage interface {
	// WebContents returns the blocks of a section, or of every section when
	// section is empty, ordered by section and key.
	WebContents(ctx context.Context, section string) ([]domain.WebContent, error)
	// UpsertWebContent inserts or replaces the block identified by section and key.
	UpsertWebContent(ctx context.Context, content domain.WebContent) (*domain.WebContent, error)
	DeleteWebContent(ctx context.Context, section, key string) (bool, error)
}
