package session

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	tokenSeparator = "."

	// maxIDLength bounds ids accepted from clients; generated ids are 64 chars.
	maxIDLength = 128
)

// Token is the decoded session cookie value: an id and an absolute expiry.
type Token struct {
	ID        string
	ExpiresAt time.Time
}

// EncodeToken formats a cookie value as "<id>.<unix seconds>".
func EncodeToken(id string, expiresAt time.Time) string {
	return id + tokenSeparator + strconv.FormatInt(expiresAt.Unix(), 10)
}

// DecodeToken parses a cookie value produced by EncodeToken. Every failure
// wraps ErrBadCookie. An expired token is still decoded successfully.
func DecodeToken(value string) (Token, error) {
	id, expires, ok := strings.Cut(value, tokenSeparator)
	if !ok {
		return Token{}, errors.Join(ErrBadCookie, errors.New("missing separator"))
	}
	if !isHexID(id) {
		return Token{}, errors.Join(ErrBadCookie, errors.New("malformed id"))
	}
	unix, err := strconv.ParseInt(expires, 10, 64)
	if err != nil {
		return Token{}, errors.Join(ErrBadCookie, errors.New("malformed expiry"), err)
	}
	return Token{ID: id, ExpiresAt: time.Unix(unix, 0)}, nil
}

// String returns the encoded form.
func (t Token) String() string {
	return EncodeToken(t.ID, t.ExpiresAt)
}

// Expired reports whether now is past the token expiry.
func (t Token) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// isHexID reports whether id is a non-empty run of hex digits. Restricting
// ids to hex also keeps them safe to use as file names.
func isHexID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
