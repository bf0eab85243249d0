// Package token issues and verifies stateless admin session tokens. A token
// is "{expiresAt}.{nonce}.{signature}" where the signature is an HMAC-SHA256
// over the first two segments, so no server-side session store is needed.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/itechperu/storefront/internal/clock"
	"github.com/itechperu/storefront/internal/config"
)

const SessionTTL = 12 * time.Hour

type Issuer struct {
	secret []byte
	clock  clock.Clock
}

func NewIssuer(cfg config.Config, c clock.Clock) *Issuer {
	return &Issuer{secret: []byte(cfg.SessionSecret()), clock: c}
}

func (i *Issuer) sign(payload string) string {
	mac := hmac.New(sha256.New, i.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func safeCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// Issue mints a fresh token and reports when it expires.
func (i *Issuer) Issue() (string, time.Time) {
	expiresAt := i.clock.Now().Add(SessionTTL)
	payload := fmt.Sprintf("%d.%s", expiresAt.Unix(), uuid.NewString())
	return payload + "." + i.sign(payload), expiresAt
}

// Verify reports whether the token is well formed, unexpired and carries a
// valid signature.
func (i *Issuer) Verify(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return false
	}

	expiresAt, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return false
	}
	if expiresAt < i.clock.Now().Unix() {
		return false
	}

	payload := parts[0] + "." + parts[1]
	return safeCompare(parts[2], i.sign(payload))
}
