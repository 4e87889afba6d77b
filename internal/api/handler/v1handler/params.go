package v1handler

import (
	"midcar/pkg/serrors"
	"midcar/pkg/storage"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListResponse is the envelope of paginated lists.
type ListResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  uint  `json:"limit"`
	Offset uint  `json:"offset"`
}

func newListResponse[T any](list storage.List[T], page storage.Page) ListResponse[T] {
	items := list.Items
	if items == nil {
		items = []T{}
	}

	return ListResponse[T]{Items: items, Total: list.Total, Limit: page.Limit, Offset: page.Offset}
}

func mapListResponse[T, R any](list storage.List[T], page storage.Page, fn func(*T) R) ListResponse[R] {
	items := make([]R, 0, len(list.Items))
	for i := range list.Items {
		items = append(items, fn(&list.Items[i]))
	}

	return ListResponse[R]{Items: items, Total: list.Total, Limit: page.Limit, Offset: page.Offset}
}

// pathID parses the uuid path parameter name.
func pathID[T ~[16]byte](c *gin.Context, name string) (T, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		var zero T

		return zero, serrors.With(serrors.ErrBadRequest, "invalid %s", name)
	}

	return T(id), nil
}

func queryID[T ~[16]byte](c *gin.Context, name string) (*T, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil //nolint: nilnil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid %s", name)
	}
	out := T(id)

	return &out, nil
}

func queryInt(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid %s", name)
	}

	return n, nil
}

func queryBool(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil //nolint: nilnil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid %s", name)
	}

	return &b, nil
}

func queryDate(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, serrors.With(serrors.ErrBadRequest, "invalid %s: expected YYYY-MM-DD", name)
	}

	return t, nil
}

// queryPage reads limit and offset, defaulting the limit to DefaultLimit.
func queryPage(c *gin.Context) (storage.Page, error) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return storage.Page{}, err
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return storage.Page{}, err
	}

	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		return storage.Page{}, serrors.With(serrors.ErrBadRequest, "limit must be at most %d", MaxLimit)
	}

	return storage.Page{Limit: uint(limit), Offset: uint(offset)}, nil //nolint: gosec
}

// queryList splits a comma separated parameter.
func queryList(c *gin.Context, name string) []string {
	var out []string
	for _, v := range strings.Split(c.Query(name), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}

// Date is a calendar day encoded as YYYY-MM-DD.
type Date struct{ time.Time }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(strconv.Quote(d.Format(time.DateOnly))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		d.Time = time.Time{}

		return nil
	}
	s, err := strconv.Unquote(s)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid date")
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		// full timestamps are accepted and truncated to their day
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return serrors.With(serrors.ErrBadRequest, "invalid date %q: expected YYYY-MM-DD", s)
		}
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	d.Time = t

	return nil
}
