package content

import (
	"context"
	"fmt"
	"midcar/pkg/domain"
	"midcar/pkg/serrors"
	"regexp"
	"strings"
)

//nolint: gochecknoglobals
var identifier = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]{0,63}$`)

func checkIdentifier(kind, s string) error {
	if !identifier.MatchString(s) {
		return serrors.With(serrors.ErrBadRequest,
			"invalid %s %q: use lower case letters, digits, '_', '.' or '-'", kind, s)
	}

	return nil
}

func (s *content) Get(ctx context.Context, section string) ([]domain.WebContent, error) {
	section = strings.TrimSpace(section)
	if err := checkIdentifier("section", section); err != nil {
		return nil, err
	}

	blocks, err := s.storage.WebContents(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("could not get web contents: %w", err)
	}

	return blocks, nil
}

func (s *content) GetAll(ctx context.Context) (map[string][]domain.WebContent, error) {
	blocks, err := s.storage.WebContents(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("could not get web contents: %w", err)
	}

	out := make(map[string][]domain.WebContent)
	for _, b := range blocks {
		out[b.Section] = append(out[b.Section], b)
	}

	return out, nil
}

func (s *content) Upsert(ctx context.Context,
	section, key, value string,
	user *domain.UserID) (*domain.WebContent, error) {
	section, key = strings.TrimSpace(section), strings.TrimSpace(key)
	if err := checkIdentifier("section", section); err != nil {
		return nil, err
	}
	if err := checkIdentifier("key", key); err != nil {
		return nil, err
	}

	block, err := s.storage.UpsertWebContent(ctx, domain.WebContent{
		Section:   section,
		Key:       key,
		Value:     value,
		UpdatedBy: user,
	})
	if err != nil {
		return nil, fmt.Errorf("could not save web content: %w", err)
	}

	return block, nil
}

func (s *content) Delete(ctx context.Context, section, key string) error {
	ok, err := s.storage.DeleteWebContent(ctx, strings.TrimSpace(section), strings.TrimSpace(key))
	if err != nil {
		return fmt.Errorf("could not delete web content: %w", err)
	}
	if !ok {
		return serrors.With(serrors.ErrNotFound, "web content %s/%s not found", section, key)
	}

	return nil
}
