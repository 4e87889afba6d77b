// Package content manages the editable text blocks of the public website and
// the blog.
package content

import (
	"context"
	"midcar/pkg/domain"
	"midcar/pkg/storage"
)

// PostInput carries the editable fields of a blog post. Nil fields are left
// untouched on update.
type PostInput struct {
	Title         *string
	Excerpt       *string
	Content       *string
	CoverImageURL *string
	Tags          *[]string
}

//go:generate mockgen -package mockcontent -source=interface.go -destination=mock/mockcontent.go *
type Content interface {
	// Get returns the blocks of a section.
	Get(ctx context.Context, section string) ([]domain.WebContent, error)
	// GetAll returns every block grouped by section.
	GetAll(ctx context.Context) (map[string][]domain.WebContent, error)
	Upsert(ctx context.Context, section, key, value string, user *domain.UserID) (*domain.WebContent, error)
	Delete(ctx context.Context, section, key string) error

	CreatePost(ctx context.Context, in PostInput) (*domain.BlogPost, error)
	UpdatePost(ctx context.Context, ID domain.PostID, in PostInput) (*domain.BlogPost, error)
	Publish(ctx context.Context, ID domain.PostID) (*domain.BlogPost, error)
	Unpublish(ctx context.Context, ID domain.PostID) (*domain.BlogPost, error)
	GetPost(ctx context.Context, ID domain.PostID) (*domain.BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	ListPosts(ctx context.Context, filter storage.PostFilter) (storage.List[domain.BlogPost], error)
	DeletePost(ctx context.Context, ID domain.PostID) error
}
