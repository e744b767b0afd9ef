// Package relay exposes the IntaSend SDK over HTTP to internal callers.
package relay

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	intasend "github.com/congo-pay/intasend-go"
	"github.com/congo-pay/intasend-go/client"
	"github.com/congo-pay/intasend-go/internal/audit"
	"github.com/congo-pay/intasend-go/internal/cache"
	"github.com/congo-pay/intasend-go/internal/metrics"
	"github.com/congo-pay/intasend-go/internal/qrcode"
)

// Handler serves the relay endpoints.
type Handler struct {
	api       *client.API
	bankCodes *cache.BankCodes
	qr        *qrcode.Generator
	audit     audit.Repository
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// Deps are the collaborators of a Handler. Metrics may be nil.
type Deps struct {
	API       *client.API
	BankCodes *cache.BankCodes
	QR        *qrcode.Generator
	Audit     audit.Repository
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
}

// NewHandler constructs a relay handler.
func NewHandler(d Deps) *Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		api:       d.API,
		bankCodes: d.BankCodes,
		qr:        d.QR,
		audit:     d.Audit,
		metrics:   d.Metrics,
		logger:    logger,
	}
}

// Error is a failed relay call rendered as JSON by ErrorHandler.
// NotSent marks failures that happened before anything reached the gateway,
// so repeating the request cannot duplicate a payment.
type Error struct {
	Status  int
	Message string
	Details []intasend.ErrorDetail
	Err     error
	NotSent bool
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether an idempotency key may be reused after this error.
func (e *Error) Retryable() bool { return e.NotSent }

type errorBody struct {
	Error   string                 `json:"error"`
	Details []intasend.ErrorDetail `json:"details,omitempty"`
}

// ErrorHandler renders relay and fiber errors as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var re *Error
	if errors.As(err, &re) {
		return c.Status(re.Status).JSON(errorBody{Error: re.Message, Details: re.Details})
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(errorBody{Error: fe.Message})
	}
	return c.Status(http.StatusInternalServerError).JSON(errorBody{Error: "internal server error"})
}

func badRequest(msg string, err error) error {
	return &Error{Status: http.StatusBadRequest, Message: msg, Err: err, NotSent: true}
}

// neverSent reports transport failures that happened before the request was
// written, such as a refused or unresolvable connection.
func neverSent(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// gatewayError maps an SDK error onto the status the relay answers with.
func (h *Handler) gatewayError(err error) error {
	var apiErr *intasend.APIError
	switch {
	case errors.Is(err, intasend.ErrInvalidRequest):
		return &Error{Status: http.StatusBadRequest, Message: err.Error(), Err: err, NotSent: true}
	case errors.Is(err, intasend.ErrUnexpectedHost), errors.Is(err, intasend.ErrNoNextPage):
		return &Error{Status: http.StatusBadRequest, Message: "invalid cursor", Err: err, NotSent: true}
	case errors.Is(err, context.DeadlineExceeded):
		h.countGatewayError("timeout")
		return &Error{Status: http.StatusGatewayTimeout, Message: "gateway timed out", Err: err}
	case errors.As(err, &apiErr):
		if apiErr.StatusCode >= http.StatusInternalServerError {
			h.countGatewayError("upstream_5xx")
			return &Error{Status: http.StatusBadGateway, Message: "gateway error", Err: err}
		}
		h.countGatewayError("upstream_4xx")
		msg := http.StatusText(apiErr.StatusCode)
		if msg == "" {
			msg = "gateway rejected request"
		}
		return &Error{Status: apiErr.StatusCode, Message: msg, Details: apiErr.Errors, Err: err}
	case errors.Is(err, intasend.ErrDecodeResponse):
		h.countGatewayError("decode")
		return &Error{Status: http.StatusBadGateway, Message: "unreadable gateway response", Err: err}
	default:
		h.countGatewayError("transport")
		return &Error{Status: http.StatusBadGateway, Message: "gateway unreachable", Err: err, NotSent: neverSent(err)}
	}
}

func (h *Handler) countGatewayError(kind string) {
	if h.metrics != nil {
		h.metrics.GatewayErrors.WithLabelValues(kind).Inc()
	}
}

// parse decodes a JSON body into a fresh T.
func parse[T any](c *fiber.Ctx) (*T, error) {
	req := new(T)
	if err := c.BodyParser(req); err != nil {
		return nil, badRequest("invalid request body", err)
	}
	return req, nil
}

// relay runs call and writes its result with the given status.
func relay[T any](c *fiber.Ctx, h *Handler, status int, call func(ctx context.Context) (T, error)) error {
	out, err := call(c.UserContext())
	if err != nil {
		return h.gatewayError(err)
	}
	return c.Status(status).JSON(out)
}

// list serves the first page of a listing, or the page behind the cursor
// query param, which carries a "next" URL returned by an earlier page of the
// same listing. base is the listing's gateway path.
func list[T any](
	c *fiber.Ctx,
	h *Handler,
	base string,
	first func(context.Context) (*intasend.Page[T], error),
	next func(context.Context, *intasend.Page[T]) (*intasend.Page[T], error),
) error {
	cur := c.Query("cursor")
	if cur == "" {
		return relay(c, h, http.StatusOK, first)
	}
	if !cursorWithin(cur, base) {
		return &Error{Status: http.StatusBadRequest, Message: "invalid cursor", NotSent: true}
	}
	return relay(c, h, http.StatusOK, func(ctx context.Context) (*intasend.Page[T], error) {
		return next(ctx, &intasend.Page[T]{Next: &cur})
	})
}

// cursorWithin accepts only absolute URLs under base. The host itself is
// checked by the backend.
func cursorWithin(cursor, base string) bool {
	u, err := url.Parse(cursor)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return false
	}
	return strings.HasPrefix(u.EscapedPath(), base)
}
