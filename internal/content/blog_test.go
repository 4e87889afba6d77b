package content_test

import (
	"context"
	"testing"
	"time"

	"midcar/internal/content"
	"midcar/pkg/domain"
	"midcar/pkg/serrors"
	"midcar/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestContent_CreatePost_slugSuffix(t *testing.T) {
	st, service := newService(t)

	st.EXPECT().SlugsWithPrefix(gomock.Any(), "ofertas-de-otono").
		Return([]string{"ofertas-de-otono", "ofertas-de-otono-2", "ofertas-de-otono-en-madrid"}, nil)
	st.EXPECT().StorePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.BlogPost) (*domain.BlogPost, error) {
			require.Equal(t, "ofertas-de-otono-3", p.Slug)
			require.Equal(t, domain.PostStatusDraft, p.Status)
			require.Equal(t, []string{"ofertas", "suv"}, p.Tags)
			require.True(t, p.PublishedAt.IsZero())
			p.ID = domain.PostID(uuid.New())

			return &p, nil
		})

	_, err := service.CreatePost(context.Background(), content.PostInput{
		Title: ptr("Ofertas de Otoño"),
		Tags:  ptr([]string{"Ofertas", "SUV", "ofertas", " "}),
	})
	require.NoError(t, err)
}

func TestContent_CreatePost_retriesOnRace(t *testing.T) {
	st, service := newService(t)

	gomock.InOrder(
		st.EXPECT().SlugsWithPrefix(gomock.Any(), "guia-itv").Return(nil, nil),
		st.EXPECT().StorePost(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate),
		st.EXPECT().SlugsWithPrefix(gomock.Any(), "guia-itv").Return([]string{"guia-itv"}, nil),
		st.EXPECT().StorePost(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.BlogPost) (*domain.BlogPost, error) {
				require.Equal(t, "guia-itv-2", p.Slug)

				return &p, nil
			}),
	)

	_, err := service.CreatePost(context.Background(), content.PostInput{Title: ptr("Guía ITV")})
	require.NoError(t, err)
}

func TestContent_CreatePost_requiresTitle(t *testing.T) {
	_, service := newService(t)

	_, err := service.CreatePost(context.Background(), content.PostInput{Title: ptr(" ")})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestContent_UpdatePost_slugFollowsDraftTitle(t *testing.T) {
	st, service := newService(t)
	id := domain.PostID(uuid.New())

	st.EXPECT().PostByID(gomock.Any(), id).Return(&domain.BlogPost{
		ID: id, Title: "Borrador", Slug: "borrador", Status: domain.PostStatusDraft,
	}, nil)
	st.EXPECT().SlugsWithPrefix(gomock.Any(), "coches-electricos").Return(nil, nil)
	st.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.BlogPost) (*domain.BlogPost, error) {
			require.Equal(t, "coches-electricos", p.Slug)

			return &p, nil
		})

	_, err := service.UpdatePost(context.Background(), id, content.PostInput{Title: ptr("Coches eléctricos")})
	require.NoError(t, err)
}

func TestContent_UpdatePost_reusesOwnSuffixedSlug(t *testing.T) {
	st, service := newService(t)
	id := domain.PostID(uuid.New())

	st.EXPECT().PostByID(gomock.Any(), id).Return(&domain.BlogPost{
		ID: id, Title: "Guía ITV 2025", Slug: "guia-itv-2", Status: domain.PostStatusDraft,
	}, nil)
	st.EXPECT().SlugsWithPrefix(gomock.Any(), "guia-itv").Return([]string{"guia-itv", "guia-itv-2"}, nil)
	st.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.BlogPost) (*domain.BlogPost, error) {
			require.Equal(t, "guia-itv-2", p.Slug)

			return &p, nil
		})

	_, err := service.UpdatePost(context.Background(), id, content.PostInput{Title: ptr("Guía ITV")})
	require.NoError(t, err)
}

func TestContent_UpdatePost_publishedKeepsSlug(t *testing.T) {
	st, service := newService(t)
	id := domain.PostID(uuid.New())

	st.EXPECT().PostByID(gomock.Any(), id).Return(&domain.BlogPost{
		ID: id, Title: "Viejo", Slug: "viejo", Status: domain.PostStatusPublished, PublishedAt: now,
	}, nil)
	st.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.BlogPost) (*domain.BlogPost, error) {
			require.Equal(t, "viejo", p.Slug)
			require.Equal(t, "Nuevo", p.Title)

			return &p, nil
		})

	_, err := service.UpdatePost(context.Background(), id, content.PostInput{Title: ptr("Nuevo")})
	require.NoError(t, err)
}

func TestContent_Publish_stampsOnce(t *testing.T) {
	st, service := newService(t)
	id := domain.PostID(uuid.New())
	first := now.Add(-72 * time.Hour)

	st.EXPECT().PostByID(gomock.Any(), id).Return(&domain.BlogPost{
		ID: id, Title: "T", Status: domain.PostStatusDraft,
	}, nil)
	st.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.BlogPost) (*domain.BlogPost, error) {
			require.Equal(t, now, p.PublishedAt)

			return &p, nil
		})
	_, err := service.Publish(context.Background(), id)
	require.NoError(t, err)

	st.EXPECT().PostByID(gomock.Any(), id).Return(&domain.BlogPost{
		ID: id, Title: "T", Status: domain.PostStatusDraft, PublishedAt: first,
	}, nil)
	st.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.BlogPost) (*domain.BlogPost, error) {
			require.Equal(t, first, p.PublishedAt)
			require.Equal(t, domain.PostStatusPublished, p.Status)

			return &p, nil
		})
	_, err = service.Publish(context.Background(), id)
	require.NoError(t, err)
}

func TestContent_Unpublish(t *testing.T) {
	st, service := newService(t)
	id := domain.PostID(uuid.New())

	st.EXPECT().PostByID(gomock.Any(), id).Return(&domain.BlogPost{
		ID: id, Title: "T", Status: domain.PostStatusPublished, PublishedAt: now,
	}, nil)
	st.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.BlogPost) (*domain.BlogPost, error) {
			require.Equal(t, domain.PostStatusDraft, p.Status)
			require.Equal(t, now, p.PublishedAt)

			return &p, nil
		})

	_, err := service.Unpublish(context.Background(), id)
	require.NoError(t, err)
}

func TestContent_GetPublishedBySlug(t *testing.T) {
	st, service := newService(t)

	st.EXPECT().PostBySlug(gomock.Any(), "borrador").Return(&domain.BlogPost{Status: domain.PostStatusDraft}, nil)
	_, err := service.GetPublishedBySlug(context.Background(), "Borrador")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().PostBySlug(gomock.Any(), "publicado").Return(&domain.BlogPost{Status: domain.PostStatusPublished}, nil)
	p, err := service.GetPublishedBySlug(context.Background(), "publicado")
	require.NoError(t, err)
	require.Equal(t, domain.PostStatusPublished, p.Status)
}

func TestContent_ListPosts(t *testing.T) {
	st, service := newService(t)

	st.EXPECT().Posts(gomock.Any(), storage.PostFilter{Status: domain.PostStatusPublished, Tag: "electricos"}).
		Return(storage.List[domain.BlogPost]{}, nil)

	_, err := service.ListPosts(context.Background(), storage.PostFilter{Status: domain.PostStatusPublished, Tag: "Eléctricos"})
	require.NoError(t, err)

	_, err = service.ListPosts(context.Background(), storage.PostFilter{Status: "ARCHIVED"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
