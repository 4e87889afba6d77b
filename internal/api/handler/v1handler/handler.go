package v1handler

import (
	"context"
	"errors"
	"midcar/internal/content"
	"midcar/internal/crm"
	"midcar/internal/dashboard"
	"midcar/internal/insurance"
	"midcar/internal/inventory"
	"midcar/pkg/logger"
	"midcar/pkg/serrors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Deps are the services behind the v1 routes.
type Deps struct {
	Inventory inventory.Inventory
	CRM       crm.CRM
	Insurance insurance.Insurance
	Content   content.Content
	Dashboard dashboard.Dashboard
}

type Handler struct {
	deps     Deps
	validate *validator.Validate
}

func New(deps Deps) *Handler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// report json names in validation messages
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Handler{deps: deps, validate: validate}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type errorKind struct {
	kind    serrors.Kind
	status  int
	message string
}

//nolint: gochecknoglobals
var errorKinds = []errorKind{
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "request timed out"},
}

func internalError() *ErrorStatusCode {
	return &ErrorStatusCode{
		StatusCode: http.StatusInternalServerError,
		Response: ErrorResponse{
			Code:    serrors.ErrInternal.Error(),
			Message: "internal error",
		},
	}
}

// NewError maps err to a response. Semantic errors keep their message;
// anything else is logged and reported as an internal error.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, serrors.ErrInternal) {
		err = serrors.Wrap(serrors.ErrTimeout, err, "")
	}

	kind, message := serrors.KindOf(err), serrors.MessageOf(err)
	for _, k := range errorKinds {
		if (kind != nil && kind == k.kind) || (kind == nil && errors.Is(err, k.kind)) {
			if message == "" {
				message = k.message
			}

			return &ErrorStatusCode{
				StatusCode: k.status,
				Response:   ErrorResponse{Code: k.kind.Error(), Message: message},
			}
		}
	}

	logger.Error(ctx, "internal error", zap.Error(err))

	return internalError()
}

// fail aborts the request with the response mapped from err.
func (h Handler) fail(c *gin.Context, err error) {
	res := h.NewError(c.Request.Context(), err)
	c.AbortWithStatusJSON(res.StatusCode, res.Response)
}

// bind decodes the JSON body into req and validates it.
func (h Handler) bind(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid json body: %s", err.Error())
	}

	return h.check(req)
}

func (h Handler) check(req any) error {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request")
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fe.Field()+": "+rule)
	}

	return serrors.With(serrors.ErrBadRequest, "invalid request: %s", strings.Join(msgs, ", "))
}
