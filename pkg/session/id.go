package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

const (
	saltSize   = 16
	idAttempts = 2
)

// IDFunc produces a candidate session id for r. attempt starts at 0 and is
// mixed into the hash so retries never repeat a candidate.
type IDFunc func(r *http.Request, attempt int) (string, error)

// GenerateID returns a 64-char hex SHA-256 digest of the peer address, the
// process id, the current time, attempt and a random salt.
func GenerateID(r *http.Request, attempt int) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	host, port := peerAddr(r)

	h := sha256.New()
	fmt.Fprintf(h, "%s:%s:%d:%d:%d:", host, port, os.Getpid(), time.Now().UnixNano(), attempt)
	h.Write(salt)

	return hex.EncodeToString(h.Sum(nil)), nil
}

func peerAddr(r *http.Request) (host, port string) {
	if r == nil {
		return "", ""
	}
	host, port, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr, ""
	}
	return host, port
}

// newID generates an id that has no entry in the store yet.
func (m *Manager) newID(ctx context.Context, r *http.Request) (string, error) {
	for attempt := range idAttempts {
		id, err := m.generateID(r, attempt)
		if err != nil {
			return "", errors.Join(ErrIDGeneration, err)
		}
		if !isHexID(id) {
			return "", errors.Join(ErrIDGeneration, fmt.Errorf("generator returned non-hex id %q", id))
		}

		exists, err := m.store.Exists(ctx, id)
		if err != nil {
			return "", errors.Join(ErrIDGeneration, err)
		}
		if !exists {
			return id, nil
		}
	}
	return "", ErrIDCollision
}
