package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itechperu/storefront/internal/clock"
	"github.com/itechperu/storefront/internal/config"
)

func newIssuer(t *testing.T, secret string) (*Issuer, *clock.FakeClock) {
	t.Helper()
	fc := clock.NewFakeClock(time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC))
	cfg := config.Config{AdminSessionSecret: secret}
	return NewIssuer(cfg, fc), fc
}

func TestIssueAndVerify(t *testing.T) {
	issuer, _ := newIssuer(t, "s3cret")

	tok, expiresAt := issuer.Issue()
	require.True(t, issuer.Verify(tok))

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), expiresAt)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issuer, fc := newIssuer(t, "s3cret")

	tok, _ := issuer.Issue()
	fc.Advance(SessionTTL + time.Second)

	assert.False(t, issuer.Verify(tok))
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	issuer, _ := newIssuer(t, "s3cret")

	tok, _ := issuer.Issue()
	parts := strings.Split(tok, ".")
	parts[0] = "9999999999"
	assert.False(t, issuer.Verify(strings.Join(parts, ".")))
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	issuer, _ := newIssuer(t, "s3cret")
	other, _ := newIssuer(t, "another")

	tok, _ := issuer.Issue()
	assert.False(t, other.Verify(tok))
}

func TestVerifyRejectsMalformedTokens(t *testing.T) {
	issuer, _ := newIssuer(t, "s3cret")

	for _, tok := range []string{"", "abc", "1.2", "..", "x.y.z.w", "notanumber.nonce.sig"} {
		assert.False(t, issuer.Verify(tok), tok)
	}
}
