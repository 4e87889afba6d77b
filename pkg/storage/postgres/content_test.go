package postgres_test

import (
	"context"
	"testing"
	"time"

	"midcar/pkg/domain"
	"midcar/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Posts(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	draft, err := pg.StorePost(ctx, domain.BlogPost{
		Title:  "Cómo elegir coche",
		Slug:   "como-elegir-coche",
		Tags:   []string{"consejos"},
		Status: domain.PostStatusDraft,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"consejos"}, draft.Tags)

	_, err = pg.StorePost(ctx, domain.BlogPost{Title: "x", Slug: "como-elegir-coche", Status: domain.PostStatusDraft})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	published, err := pg.StorePost(ctx, domain.BlogPost{
		Title:       "Cómo elegir coche",
		Slug:        "como-elegir-coche-2",
		Status:      domain.PostStatusPublished,
		PublishedAt: time.Now(),
	})
	require.NoError(t, err)
	require.Empty(t, published.Tags)

	_, err = pg.StorePost(ctx, domain.BlogPost{Title: "Otro", Slug: "como-elegir-coches", Status: domain.PostStatusDraft})
	require.NoError(t, err)

	slugs, err := pg.SlugsWithPrefix(ctx, "como-elegir-coche")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"como-elegir-coche", "como-elegir-coche-2"}, slugs)

	list, err := pg.Posts(ctx, storage.PostFilter{Status: domain.PostStatusPublished})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	list, err = pg.Posts(ctx, storage.PostFilter{Tag: "consejos"})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	require.Equal(t, draft.ID, list.Items[0].ID)

	list, err = pg.Posts(ctx, storage.PostFilter{})
	require.NoError(t, err)
	require.Equal(t, published.ID, list.Items[0].ID, "published posts first")

	got, err := pg.PostBySlug(ctx, "como-elegir-coche-2")
	require.NoError(t, err)
	require.Equal(t, published.ID, got.ID)

	p := *draft
	p.Tags = []string{"consejos", "compra"}
	updated, err := pg.UpdatePost(ctx, p)
	require.NoError(t, err)
	require.Len(t, updated.Tags, 2)

	ok, err := pg.DeletePost(ctx, draft.ID)
	require.NoError(t, err)
	require.True(t, ok)
	got, err = pg.PostByID(ctx, draft.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_WebContents(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := domain.UserID(uuid.New())
	first, err := pg.UpsertWebContent(ctx, domain.WebContent{Section: "home", Key: "hero_title", Value: "Hola"})
	require.NoError(t, err)
	require.Nil(t, first.UpdatedBy)

	second, err := pg.UpsertWebContent(ctx, domain.WebContent{
		Section: "home", Key: "hero_title", Value: "Bienvenido", UpdatedBy: &user,
	})
	require.NoError(t, err)
	require.Equal(t, "Bienvenido", second.Value)
	require.Equal(t, user, *second.UpdatedBy)

	_, err = pg.UpsertWebContent(ctx, domain.WebContent{Section: "about", Key: "body", Value: "Desde 1998"})
	require.NoError(t, err)

	all, err := pg.WebContents(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "about", all[0].Section)

	home, err := pg.WebContents(ctx, "home")
	require.NoError(t, err)
	require.Len(t, home, 1)

	ok, err := pg.DeleteWebContent(ctx, "home", "hero_title")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = pg.DeleteWebContent(ctx, "home", "hero_title")
	require.NoError(t, err)
	require.False(t, ok)
}
