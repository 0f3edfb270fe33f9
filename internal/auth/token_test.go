package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobosolo/jdr/internal/util"
)

const testSecret = "unit-test-signing-secret"

func TestIssueToken(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("is deterministic for a fixed instant", func(t *testing.T) {
		assert.Equal(t, IssueToken(testSecret, now), IssueToken(testSecret, now))
	})

	t.Run("encodes expiry and signature separated by a dot", func(t *testing.T) {
		token := IssueToken(testSecret, now)
		decoded, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)

		parts := strings.SplitN(string(decoded), ".", 2)
		require.Len(t, parts, 2)
		assert.Equal(t, "1773518400000", parts[0])
		assert.Len(t, parts[1], 64)
	})
}

func TestVerifyToken(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("accepts a freshly issued token", func(t *testing.T) {
		token := IssueToken(testSecret, now)

		session, ok := VerifyToken(token, testSecret, now)
		require.True(t, ok)
		assert.Equal(t, now.Add(TokenTTL).UnixMilli(), session.ExpiresAt.UnixMilli())
	})

	t.Run("accepts until just before expiry", func(t *testing.T) {
		token := IssueToken(testSecret, now)

		_, ok := VerifyToken(token, testSecret, now.Add(TokenTTL-time.Millisecond))
		assert.True(t, ok)
	})

	t.Run("rejects at and after expiry", func(t *testing.T) {
		token := IssueToken(testSecret, now)

		_, ok := VerifyToken(token, testSecret, now.Add(TokenTTL))
		assert.False(t, ok)

		_, ok = VerifyToken(token, testSecret, now.Add(TokenTTL+time.Hour))
		assert.False(t, ok)
	})

	t.Run("rejects any single-bit corruption", func(t *testing.T) {
		token := IssueToken(testSecret, now)
		raw, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)

		for i := range raw {
			for bit := 0; bit < 8; bit++ {
				corrupted := make([]byte, len(raw))
				copy(corrupted, raw)
				corrupted[i] ^= 1 << bit

				_, ok := VerifyToken(base64.RawURLEncoding.EncodeToString(corrupted), testSecret, now)
				assert.False(t, ok, "flipping bit %d of byte %d must invalidate the token", bit, i)
			}
		}
	})

	t.Run("rejects token signed with a different secret", func(t *testing.T) {
		token := IssueToken("other-secret", now)

		_, ok := VerifyToken(token, testSecret, now)
		assert.False(t, ok)
	})

	t.Run("rejects malformed base64", func(t *testing.T) {
		_, ok := VerifyToken("not!!valid##base64", testSecret, now)
		assert.False(t, ok)
	})

	t.Run("rejects missing separator", func(t *testing.T) {
		token := base64.RawURLEncoding.EncodeToString([]byte("1773489600000"))

		_, ok := VerifyToken(token, testSecret, now)
		assert.False(t, ok)
	})

	t.Run("rejects empty token", func(t *testing.T) {
		_, ok := VerifyToken("", testSecret, now)
		assert.False(t, ok)
	})

	t.Run("rejects non-numeric expiry even when correctly signed", func(t *testing.T) {
		payload := "not-a-number"
		sig := util.HmacSHA256(testSecret, payload)
		token := base64.RawURLEncoding.EncodeToString([]byte(payload + "." + sig))

		_, ok := VerifyToken(token, testSecret, now)
		assert.False(t, ok)
	})

	t.Run("rejects past expiry even when correctly signed", func(t *testing.T) {
		payload := "1000000000000" // 2001, long gone
		sig := util.HmacSHA256(testSecret, payload)
		token := base64.RawURLEncoding.EncodeToString([]byte(payload + "." + sig))

		_, ok := VerifyToken(token, testSecret, now)
		assert.False(t, ok)
	})
}
