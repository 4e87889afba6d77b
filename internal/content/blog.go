package content

import (
	"context"
	"errors"
	"fmt"
	"midcar/pkg/domain"
	"midcar/pkg/logger"
	"midcar/pkg/serrors"
	"midcar/pkg/storage"
	"midcar/pkg/textfold"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// slugAttempts bounds retries when a concurrent write takes the same slug.
	slugAttempts = 3
	maxTags      = 10
)

type content struct {
	storage storage.Storage
	now     func() time.Time
}

// New creates a Content service. now defaults to time.Now.
func New(storage storage.Storage, now func() time.Time) Content {
	if now == nil {
		now = time.Now
	}

	return &content{storage: storage, now: now}
}

func postNotFound(id domain.PostID) error {
	return serrors.With(serrors.ErrNotFound, "post %s not found", id)
}

func (in PostInput) apply(p *domain.BlogPost) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&p.Title, in.Title)
	set(&p.Excerpt, in.Excerpt)
	set(&p.CoverImageURL, in.CoverImageURL)
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.Tags != nil {
		p.Tags = normalizeTags(*in.Tags)
	}
}

// normalizeTags folds tags into slugs and drops empty and repeated ones.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		tag := textfold.Slug(t)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}

func validatePost(p *domain.BlogPost) error {
	switch {
	case p.Title == "":
		return serrors.With(serrors.ErrBadRequest, "title is required")
	case len(p.Tags) > maxTags:
		return serrors.With(serrors.ErrBadRequest, "a post takes at most %d tags", maxTags)
	}

	return nil
}

// uniqueSlug returns base, or base-N with the lowest N >= 2 that is free.
// current is the slug the post already owns, if any, and counts as free.
func uniqueSlug(ctx context.Context, st storage.BlogStorage, base, current string) (string, error) {
	if base == current {
		return base, nil
	}
	slugs, err := st.SlugsWithPrefix(ctx, base)
	if err != nil {
		return "", fmt.Errorf("could not check slugs: %w", err)
	}

	taken := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		taken[s] = struct{}{}
	}
	delete(taken, current)
	if _, ok := taken[base]; !ok {
		return base, nil
	}
	for n := 2; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if _, ok := taken[candidate]; !ok {
			return candidate, nil
		}
	}
}

func baseSlug(title string) string {
	if slug := textfold.Slug(title); slug != "" {
		return slug
	}

	return "post"
}

// CreatePost stores a draft. Its slug is derived from the title.
func (s *content) CreatePost(ctx context.Context, in PostInput) (*domain.BlogPost, error) {
	p := domain.BlogPost{Status: domain.PostStatusDraft, Tags: []string{}}
	in.apply(&p)
	if err := validatePost(&p); err != nil {
		return nil, err
	}

	base := baseSlug(p.Title)
	for attempt := 1; ; attempt++ {
		slug, err := uniqueSlug(ctx, s.storage, base, "")
		if err != nil {
			return nil, err
		}
		p.Slug = slug

		stored, err := s.storage.StorePost(ctx, p)
		if err == nil {
			logger.Info(ctx, "post created", zap.Stringer("postID", stored.ID), zap.String("slug", stored.Slug))

			return stored, nil
		}
		if !errors.Is(err, storage.ErrDuplicate) || attempt == slugAttempts {
			return nil, fmt.Errorf("could not store post: %w", err)
		}
	}
}

func (s *content) GetPost(ctx context.Context, id domain.PostID) (*domain.BlogPost, error) {
	p, err := s.storage.PostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get post: %w", err)
	}
	if p == nil {
		return nil, postNotFound(id)
	}

	return p, nil
}

// UpdatePost edits a post. A new title gives the post a new slug unless the
// post is published, so public links keep working.
func (s *content) UpdatePost(ctx context.Context, id domain.PostID, in PostInput) (*domain.BlogPost, error) {
	p, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	oldTitle := p.Title
	in.apply(p)
	if err := validatePost(p); err != nil {
		return nil, err
	}
	if p.Title != oldTitle && p.Status == domain.PostStatusDraft {
		if p.Slug, err = uniqueSlug(ctx, s.storage, baseSlug(p.Title), p.Slug); err != nil {
			return nil, err
		}
	}

	return s.save(ctx, p)
}

func (s *content) save(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error) {
	updated, err := s.storage.UpdatePost(ctx, *p)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "slug %q is taken", p.Slug)
		}

		return nil, fmt.Errorf("could not update post: %w", err)
	}
	if updated == nil {
		return nil, postNotFound(p.ID)
	}

	return updated, nil
}

// Publish makes a post public. The publication date is set the first time
// only, so republishing keeps the original date.
func (s *content) Publish(ctx context.Context, id domain.PostID) (*domain.BlogPost, error) {
	p, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == domain.PostStatusPublished {
		return p, nil
	}

	p.Status = domain.PostStatusPublished
	if p.PublishedAt.IsZero() {
		p.PublishedAt = s.now()
	}

	return s.save(ctx, p)
}

func (s *content) Unpublish(ctx context.Context, id domain.PostID) (*domain.BlogPost, error) {
	p, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == domain.PostStatusDraft {
		return p, nil
	}
	p.Status = domain.PostStatusDraft

	return s.save(ctx, p)
}

// GetPublishedBySlug returns a public post. Drafts are reported as not found.
func (s *content) GetPublishedBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	p, err := s.storage.PostBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, fmt.Errorf("could not get post: %w", err)
	}
	if p == nil || p.Status != domain.PostStatusPublished {
		return nil, serrors.With(serrors.ErrNotFound, "post %q not found", slug)
	}

	return p, nil
}

func (s *content) ListPosts(ctx context.Context, filter storage.PostFilter) (storage.List[domain.BlogPost], error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return storage.List[domain.BlogPost]{}, serrors.With(serrors.ErrBadRequest, "invalid status %q", filter.Status)
	}
	if filter.Tag != "" {
		filter.Tag = textfold.Slug(filter.Tag)
	}

	list, err := s.storage.Posts(ctx, filter)
	if err != nil {
		return storage.List[domain.BlogPost]{}, fmt.Errorf("could not list posts: %w", err)
	}

	return list, nil
}

func (s *content) DeletePost(ctx context.Context, id domain.PostID) error {
	ok, err := s.storage.DeletePost(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete post: %w", err)
	}
	if !ok {
		return postNotFound(id)
	}

	return nil
}
