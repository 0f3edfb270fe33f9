package auth

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/mobosolo/jdr/internal/util"
)

// TokenTTL is the lifetime of an admin session token.
const TokenTTL = 8 * time.Hour

// Session is the capability proven by a valid token. It carries no
// identity beyond "is admin".
type Session struct {
	ExpiresAt time.Time
}

// IssueToken produces a stateless admin credential: the expiry instant
// in unix milliseconds, signed with HMAC-SHA256, packed as
// base64url("<expiry>.<signature>"). Nothing is stored server-side.
func IssueToken(secret string, now time.Time) string {
	payload := strconv.FormatInt(now.Add(TokenTTL).UnixMilli(), 10)
	sig := util.HmacSHA256(secret, payload)
	return base64.RawURLEncoding.EncodeToString([]byte(payload + "." + sig))
}

// VerifyToken parses and checks a token. Every failure mode (bad
// base64, missing separator, signature mismatch, unparseable or past
// expiry) collapses into the same false result so callers cannot leak
// which check failed.
func VerifyToken(token, secret string, now time.Time) (Session, bool) {
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Session{}, false
	}

	parts := strings.SplitN(string(decoded), ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Session{}, false
	}
	expiryRaw, sig := parts[0], parts[1]

	expected := util.HmacSHA256(secret, expiryRaw)
	if !util.ConstantTimeEqual(sig, expected) {
		return Session{}, false
	}

	expiryMillis, err := strconv.ParseInt(expiryRaw, 10, 64)
	if err != nil {
		return Session{}, false
	}

	expiresAt := time.UnixMilli(expiryMillis)
	if !expiresAt.After(now) {
		return Session{}, false
	}

	return Session{ExpiresAt: expiresAt}, true
}
