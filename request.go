package intasend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	publicKeyHeader = "X-IntaSend-Public-API-Key"
	maxResponseSize = 4 << 20
)

// Auth selects which credential is attached to a request.
type Auth int

const (
	// SecretKeyAuth sends "Authorization: Bearer <secret key>".
	SecretKeyAuth Auth = iota
	// PublicKeyAuth sends the publishable key in the X-IntaSend-Public-API-Key header.
	PublicKeyAuth
)

func (a Auth) String() string {
	if a == PublicKeyAuth {
		return "public"
	}
	return "secret"
}

// Call sends payload to path and decodes a successful response into out.
// A nil payload sends no body and a nil out discards the response body.
func (b *Backend) Call(ctx context.Context, method, path string, auth Auth, payload, out any) error {
	if payload != nil {
		if err := Validate(payload); err != nil {
			return err
		}
	}

	target, err := b.resolve(path)
	if err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s %s payload: %w", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", b.userAgent)
	switch auth {
	case PublicKeyAuth:
		req.Header.Set(publicKeyHeader, b.publishableKey)
	default:
		req.Header.Set("Authorization", "Bearer "+b.secretKey)
	}

	start := time.Now()
	resp, err := b.httpClient.Do(req)
	if err != nil {
		b.logger.Warn("intasend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	fields := []zap.Field{
		zap.String("method", method),
		zap.String("path", path),
		zap.String("auth", auth.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b.logger.Warn("intasend request rejected", fields...)
		return newAPIError(method, path, resp.StatusCode, raw)
	}
	b.logger.Debug("intasend request completed", fields...)

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrDecodeResponse, method, path, err)
	}
	return nil
}

// Send is the typed form of Call: it returns a freshly decoded T.
func Send[T any](ctx context.Context, b *Backend, method, path string, auth Auth, payload any) (*T, error) {
	out := new(T)
	if err := b.Call(ctx, method, path, auth, payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

// resolve joins a relative path with the base URL. Absolute URLs are only
// accepted when they point at the configured host so credentials never leak.
func (b *Backend) resolve(path string) (string, error) {
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return b.baseURL + path, nil
	}

	target, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", path, err)
	}
	base, err := url.Parse(b.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", b.baseURL, err)
	}
	if !strings.EqualFold(target.Scheme, base.Scheme) || !strings.EqualFold(target.Host, base.Host) {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedHost, target.Host)
	}
	return target.String(), nil
}
