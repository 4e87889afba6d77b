package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"midcar/internal/api/handler/v1handler"
	"midcar/pkg/storage"
	"net/http"
	"testing"

	"midcar/pkg/logger"
	"midcar/pkg/serrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	gin.SetMode(gin.TestMode)
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	// Pass the Kind sentinel directly
	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrBadRequest, "invalid payload: missing make")
	res := h.NewError(ctx, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "invalid payload: missing make", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	res := h.NewError(ctx, err)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_WrappedSemanticKeepsMessage(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := fmt.Errorf("could not win lead: %w",
		serrors.With(serrors.ErrConflict, "vehicle is already sold"))
	res := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusConflict, res.StatusCode)
	require.Equal(t, serrors.ErrConflict.Error(), res.Response.Code)
	require.Equal(t, "vehicle is already sold", res.Response.Message)
}

func TestNewError_DeadlineExceeded_Timeout(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := fmt.Errorf("could not fetch vehicles: %w", context.DeadlineExceeded)
	res := h.NewError(context.Background(), err)
	require.Equal(t, http.StatusGatewayTimeout, res.StatusCode)
	require.Equal(t, serrors.ErrTimeout.Error(), res.Response.Code)
	require.Equal(t, "request timed out", res.Response.Message)
}

func TestNewError_StorageErrorsAreInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	// raw storage failures never leak to clients
	res := h.NewError(context.Background(), fmt.Errorf("could not store vehicle: %w", storage.ErrDuplicate))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindsTable(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	tests := []struct {
		kind   serrors.Kind
		status int
	}{
		{serrors.ErrForbidden, http.StatusForbidden},
		{serrors.ErrRateLimited, http.StatusTooManyRequests},
		{serrors.ErrUnavailable, http.StatusServiceUnavailable},
		{serrors.ErrTimeout, http.StatusGatewayTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.kind.Error(), func(t *testing.T) {
			res := h.NewError(context.Background(), serrors.KindOnly(tt.kind))
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.kind.Error(), res.Response.Code)
			require.NotEmpty(t, res.Response.Message)
		})
	}
}
