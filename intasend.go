// Package intasend is a client for the IntaSend payment gateway REST API.
//
// The Backend in this package carries credentials and transport settings and
// performs every HTTP exchange with the gateway. Resource clients live in the
// checkout, collection, payouts, refunds, wallets and paymentlinks packages;
// the client package bundles all of them behind one constructor.
package intasend

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// SandboxURL is the gateway host used in test mode.
	SandboxURL = "https://sandbox.intasend.com"
	// LiveURL is the production gateway host.
	LiveURL = "https://payment.intasend.com"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "intasend-go/1.0"
)

// Backend holds credentials and the HTTP client used to reach the gateway.
type Backend struct {
	publishableKey string
	secretKey      string
	testMode       bool
	baseURL        string
	httpClient     *http.Client
	timeout        time.Duration
	userAgent      string
	logger         *zap.Logger
}

// Option customises a Backend.
type Option func(*Backend)

// WithHTTPClient replaces the HTTP client. Its Timeout is left untouched.
func WithHTTPClient(client *http.Client) Option {
	return func(b *Backend) {
		if client != nil {
			b.httpClient = client
		}
	}
}

// WithBaseURL points the backend at a different host, e.g. a local fake gateway.
func WithBaseURL(url string) Option {
	return func(b *Backend) {
		if url != "" {
			b.baseURL = strings.TrimRight(url, "/")
		}
	}
}

// WithTimeout bounds every request made by the backend.
func WithTimeout(d time.Duration) Option {
	return func(b *Backend) {
		if d > 0 {
			b.timeout = d
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Backend) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(b *Backend) {
		if ua != "" {
			b.userAgent = ua
		}
	}
}

// NewBackend creates a backend for the given key pair. testMode selects the
// sandbox host unless WithBaseURL is supplied.
func NewBackend(publishableKey, secretKey string, testMode bool, opts ...Option) *Backend {
	b := &Backend{
		publishableKey: publishableKey,
		secretKey:      secretKey,
		testMode:       testMode,
		baseURL:        LiveURL,
		timeout:        defaultTimeout,
		userAgent:      defaultUserAgent,
		logger:         zap.NewNop(),
	}
	if testMode {
		b.baseURL = SandboxURL
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.httpClient == nil {
		b.httpClient = &http.Client{Timeout: b.timeout}
	}
	return b
}

// BaseURL returns the host requests are sent to.
func (b *Backend) BaseURL() string { return b.baseURL }

// TestMode reports whether the backend was created for the sandbox.
func (b *Backend) TestMode() bool { return b.testMode }
