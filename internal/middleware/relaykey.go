package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const (
	relayKeyHeader = "X-Relay-Key"
	callerLocal    = "caller"
)

// RelayKey authenticates callers against bcrypt hashes of their relay keys.
// The key is read from X-Relay-Key or an "Authorization: Bearer" header. With
// no hashes configured every caller is let through as "anonymous".
func RelayKey(hashes []string) fiber.Handler {
	v := &keyVerifier{hashes: make([][]byte, 0, len(hashes))}
	for _, h := range hashes {
		v.hashes = append(v.hashes, []byte(h))
	}

	return func(c *fiber.Ctx) error {
		if len(v.hashes) == 0 {
			c.Locals(callerLocal, "anonymous")
			return c.Next()
		}

		key := presentedKey(c)
		if key == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing relay key")
		}
		caller, ok := v.verify(key)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid relay key")
		}
		c.Locals(callerLocal, caller)
		return c.Next()
	}
}

// CallerFrom returns the caller id set by RelayKey, or "" before it ran.
func CallerFrom(c *fiber.Ctx) string {
	caller, _ := c.Locals(callerLocal).(string)
	return caller
}

func presentedKey(c *fiber.Ctx) string {
	if key := strings.TrimSpace(c.Get(relayKeyHeader)); key != "" {
		return key
	}
	authz := c.Get(fiber.HeaderAuthorization)
	if len(authz) > 7 && strings.EqualFold(authz[:7], "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return ""
}

// keyVerifier remembers keys that already matched so bcrypt runs once per key.
type keyVerifier struct {
	hashes [][]byte
	known  sync.Map // sha256(key) -> caller id
}

func (v *keyVerifier) verify(key string) (string, bool) {
	sum := sha256.Sum256([]byte(key))
	digest := hex.EncodeToString(sum[:])
	if caller, ok := v.known.Load(digest); ok {
		return caller.(string), true
	}
	for _, h := range v.hashes {
		if bcrypt.CompareHashAndPassword(h, []byte(key)) == nil {
			caller := "key-" + digest[:12]
			v.known.Store(digest, caller)
			return caller, true
		}
	}
	return "", false
}
