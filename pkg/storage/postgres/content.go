package postgres

import (
	"context"
	"fmt"
	"midcar/pkg/domain"
	"midcar/pkg/storage"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	postsTable       = "blog_posts"
	webContentsTable = "web_contents"
)

func (p *PgSQL) StorePost(ctx context.Context, post domain.BlogPost) (*domain.BlogPost, error) {
	var row PgPost
	row.FromDomain(post)

	var stored PgPost
	if _, err := p.Builder.Insert(postsTable).
		Rows(row).
		Returning(&PgPost{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, mapWriteErr(err, "could not store post into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UpdatePost(ctx context.Context, post domain.BlogPost) (*domain.BlogPost, error) {
	var row PgPost
	row.FromDomain(post)

	var updated PgPost
	found, err := p.Builder.Update(postsTable).
		Set(goqu.Record{
			"title":           row.Title,
			"slug":            row.Slug,
			"excerpt":         row.Excerpt,
			"content":         row.Content,
			"cover_image_url": row.CoverImageURL,
			"tags":            row.Tags,
			"status":          row.Status,
			"published_at":    row.PublishedAt,
			"updated_at":      goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Returning(&PgPost{}).
		Executor().ScanStructContext(ctx, &updated)
	if err != nil {
		return nil, mapWriteErr(err, "could not update post in pg")
	}
	if !found {
		return nil, nil
	}

	return updated.ToDomain(), nil
}

func (p *PgSQL) PostByID(ctx context.Context, id domain.PostID) (*domain.BlogPost, error) {
	var row PgPost
	found, err := p.Builder.From(postsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch post by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) PostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	var row PgPost
	found, err := p.Builder.From(postsTable).
		Where(goqu.I("slug").Eq(slug)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch post by slug: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Posts(ctx context.Context, filter storage.PostFilter) (storage.List[domain.BlogPost], error) {
	var w []goqu.Expression
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if tag := strings.TrimSpace(filter.Tag); tag != "" {
		w = append(w, goqu.L("? = ANY(tags)", tag))
	}
	ds := p.Builder.From(postsTable).Where(w...)

	total, err := ds.CountContext(ctx)
	if err != nil {
		return storage.List[domain.BlogPost]{}, fmt.Errorf("could not count posts: %w", err)
	}

	var rows []PgPost
	if err := ds.Order(
		goqu.I("published_at").Desc().NullsLast(),
		goqu.I("created_at").Desc(),
		goqu.I("id").Desc(),
	).
		Limit(limitOf(filter.Page)).
		Offset(filter.Offset).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.List[domain.BlogPost]{}, fmt.Errorf("could not fetch posts from pg: %w", err)
	}

	return storage.List[domain.BlogPost]{Items: toDomainSlice(rows, (*PgPost).ToDomain), Total: total}, nil
}

func (p *PgSQL) DeletePost(ctx context.Context, id domain.PostID) (bool, error) {
	res, err := p.Builder.Delete(postsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete post: %w", err)
	}

	return affected(res)
}

func (p *PgSQL) SlugsWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)

	var slugs []string
	if err := p.Builder.From(postsTable).
		Select("slug").
		Where(goqu.Or(
			goqu.I("slug").Eq(prefix),
			goqu.I("slug").Like(escaped+"-%"),
		)).
		Executor().ScanValsContext(ctx, &slugs); err != nil {
		return nil, fmt.Errorf("could not fetch slugs: %w", err)
	}

	return slugs, nil
}

func (p *PgSQL) WebContents(ctx context.Context, section string) ([]domain.WebContent, error) {
	ds := p.Builder.From(webContentsTable)
	if section != "" {
		ds = ds.Where(goqu.I("section").Eq(section))
	}

	var rows []PgWebContent
	if err := ds.Order(goqu.I("section").Asc(), goqu.I("key").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch web contents: %w", err)
	}

	return toDomainSlice(rows, (*PgWebContent).ToDomain), nil
}

func (p *PgSQL) UpsertWebContent(ctx context.Context, content domain.WebContent) (*domain.WebContent, error) {
	var row PgWebContent
	if _, err := p.Builder.Insert(webContentsTable).
		Rows(goqu.Record{
			"section":    content.Section,
			"key":        content.Key,
			"value":      content.Value,
			"updated_by": nullUUID((*uuid.UUID)(content.UpdatedBy)),
		}).
		OnConflict(goqu.DoUpdate("section, key", goqu.Record{
			"value":      goqu.I("excluded.value"),
			"updated_by": goqu.I("excluded.updated_by"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgWebContent{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not upsert web content: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteWebContent(ctx context.Context, section, key string) (bool, error) {
	res, err := p.Builder.Delete(webContentsTable).
		Where(
			goqu.I("section").Eq(section),
			goqu.I("key").Eq(key),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete web content: %w", err)
	}

	return affected(res)
}
