package content_test

import (
	"context"
	"testing"
	"time"

	"midcar/internal/content"
	"midcar/pkg/domain"
	"midcar/pkg/logger"
	"midcar/pkg/serrors"
	mockstorage "midcar/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

//nolint: gochecknoglobals
var now = time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	logger.Setup("test")
	m.Run()
}

func newService(t *testing.T) (*mockstorage.MockStorage, content.Content) {
	t.Helper()

	st := mockstorage.NewMockStorage(gomock.NewController(t))

	return st, content.New(st, func() time.Time { return now })
}

func ptr[T any](v T) *T { return &v }

func TestContent_Upsert(t *testing.T) {
	st, service := newService(t)
	user := domain.UserID(uuid.New())

	st.EXPECT().UpsertWebContent(gomock.Any(), domain.WebContent{
		Section: "home", Key: "hero_title", Value: "Tu próximo coche", UpdatedBy: &user,
	}).DoAndReturn(func(_ context.Context, c domain.WebContent) (*domain.WebContent, error) {
		c.UpdatedAt = now

		return &c, nil
	})

	block, err := service.Upsert(context.Background(), " home ", "hero_title", "Tu próximo coche", &user)
	require.NoError(t, err)
	require.Equal(t, now, block.UpdatedAt)

	for _, bad := range [][2]string{{"Home", "x"}, {"home", ""}, {"home", "hero title"}} {
		_, err := service.Upsert(context.Background(), bad[0], bad[1], "v", nil)
		require.ErrorIs(t, err, serrors.ErrBadRequest, bad)
	}
}

func TestContent_GetAll(t *testing.T) {
	st, service := newService(t)

	st.EXPECT().WebContents(gomock.Any(), "").Return([]domain.WebContent{
		{Section: "contact", Key: "phone"},
		{Section: "home", Key: "hero_subtitle"},
		{Section: "home", Key: "hero_title"},
	}, nil)

	all, err := service.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all["home"], 2)
	require.Len(t, all["contact"], 1)
}

func TestContent_Delete_notFound(t *testing.T) {
	st, service := newService(t)

	st.EXPECT().DeleteWebContent(gomock.Any(), "home", "gone").Return(false, nil)
	require.ErrorIs(t, service.Delete(context.Background(), "home", "gone"), serrors.ErrNotFound)
}
