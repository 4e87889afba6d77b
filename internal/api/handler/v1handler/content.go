package v1handler

import (
	"context"
	"midcar/internal/content"
	"midcar/pkg/domain"
	"midcar/pkg/serrors"
	"midcar/pkg/storage"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContentValueRequest struct {
	Value string `json:"value" validate:"max=20000"`
}

type PostRequest struct {
	Title         *string   `json:"title"         validate:"omitempty,max=256"`
	Excerpt       *string   `json:"excerpt"       validate:"omitempty,max=1000"`
	Content       *string   `json:"content"       validate:"omitempty,max=200000"`
	CoverImageURL *string   `json:"coverImageUrl" validate:"omitempty,url"`
	Tags          *[]string `json:"tags"          validate:"omitempty,max=10,dive,max=64"`
}

func postFilter(c *gin.Context, page storage.Page) storage.PostFilter {
	return storage.PostFilter{Tag: c.Query("tag"), Page: page}
}

func (h Handler) getSection(c *gin.Context, section string) {
	blocks, err := h.deps.Content.Get(c.Request.Context(), section)
	if err != nil {
		h.fail(c, err)

		return
	}
	if blocks == nil {
		blocks = []domain.WebContent{}
	}

	c.JSON(http.StatusOK, blocks)
}

// Web content

func (h Handler) GetAllContent(c *gin.Context) {
	all, err := h.deps.Content.GetAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, all)
}

func (h Handler) GetContentSection(c *gin.Context) {
	h.getSection(c, c.Param("section"))
}

func (h Handler) UpsertContent(c *gin.Context) {
	var req ContentValueRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	var user *domain.UserID
	if id := GetUserIDFromContext(c.Request.Context()); !id.IsZero() {
		user = &id
	}

	block, err := h.deps.Content.Upsert(c.Request.Context(), c.Param("section"), c.Param("key"), req.Value, user)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, block)
}

func (h Handler) DeleteContent(c *gin.Context) {
	if err := h.deps.Content.Delete(c.Request.Context(), c.Param("section"), c.Param("key")); err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

// Blog

func (h Handler) CreatePost(c *gin.Context) {
	var req PostRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	post, err := h.deps.Content.CreatePost(c.Request.Context(), content.PostInput(req))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h Handler) UpdatePost(c *gin.Context) {
	id, err := pathID[domain.PostID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}
	var req PostRequest
	if err := h.bind(c, &req); err != nil {
		h.fail(c, err)

		return
	}

	post, err := h.deps.Content.UpdatePost(c.Request.Context(), id, content.PostInput(req))
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, post)
}

func (h Handler) GetPost(c *gin.Context) {
	id, err := pathID[domain.PostID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	post, err := h.deps.Content.GetPost(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, post)
}

func (h Handler) ListPosts(c *gin.Context) {
	page, err := queryPage(c)
	if err != nil {
		h.fail(c, err)

		return
	}
	filter := postFilter(c, page)
	filter.Status = domain.PostStatus(c.Query("status"))
	if filter.Status != "" && !filter.Status.Valid() {
		h.fail(c, serrors.With(serrors.ErrBadRequest, "invalid status %q", filter.Status))

		return
	}

	list, err := h.deps.Content.ListPosts(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, newListResponse(list, page))
}

func (h Handler) PublishPost(c *gin.Context) {
	h.changePost(c, h.deps.Content.Publish)
}

func (h Handler) UnpublishPost(c *gin.Context) {
	h.changePost(c, h.deps.Content.Unpublish)
}

func (h Handler) changePost(c *gin.Context, change func(context.Context, domain.PostID) (*domain.BlogPost, error)) {
	id, err := pathID[domain.PostID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	post, err := change(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)

		return
	}

	c.JSON(http.StatusOK, post)
}

func (h Handler) DeletePost(c *gin.Context) {
	id, err := pathID[domain.PostID](c, "id")
	if err != nil {
		h.fail(c, err)

		return
	}

	if err := h.deps.Content.DeletePost(c.Request.Context(), id); err != nil {
		h.fail(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
