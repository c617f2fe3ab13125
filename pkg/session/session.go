package session

import (
	"context"
	"encoding/json"
	"errors"
	"maps"
	"slices"
)

// Session is the per-request view of one client's session data.
//
// A Session is created by the Manager's request hook and persisted by its
// response hook; it must not be shared between requests or goroutines.
type Session struct {
	id       string
	path     string
	data     values
	baseline []byte
	deleted  bool
	store    Store
	metrics  *Metrics
}

// newSession binds data to id. The baseline is the canonical encoding of data
// at this point and is never modified afterwards.
func newSession(id string, store Store, data values) (*Session, error) {
	if data.m == nil {
		data = newValues()
	}
	baseline, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Session{
		id:       id,
		path:     store.Path(id),
		data:     data,
		baseline: baseline,
		store:    store,
	}, nil
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Path returns the location of the backing entry (a file path for FileStore).
func (s *Session) Path() string {
	return s.path
}

// Get retrieves a value from session data.
func (s *Session) Get(key string) (any, bool) {
	val, ok := s.data.m[key]
	return val, ok
}

// GetString retrieves a string value from session data.
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// GetInt retrieves an integer value. Values loaded from storage arrive as
// json.Number; values set during the request keep their Go type.
func (s *Session) GetInt(key string) (int, bool) {
	val, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// GetBool retrieves a bool value from session data.
func (s *Session) GetBool(key string) (bool, bool) {
	val, ok := s.Get(key)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

// Set stores a value. It must be JSON-serializable or the save at the end of
// the request fails.
func (s *Session) Set(key string, value any) {
	s.data.set(key, value)
}

// Delete removes a key from session data.
func (s *Session) Delete(key string) {
	s.data.delete(key)
}

// Clear removes all data from the session.
func (s *Session) Clear() {
	s.data = newValues()
}

// Keys returns the keys in insertion order.
func (s *Session) Keys() []string {
	return slices.Clone(s.data.keys)
}

// Len returns the number of keys.
func (s *Session) Len() int {
	return len(s.data.keys)
}

// Values returns a shallow copy of the session data.
func (s *Session) Values() map[string]any {
	return maps.Clone(s.data.m)
}

// IsModified reports whether the data differs from what was loaded.
func (s *Session) IsModified() bool {
	modified, _, err := s.changes()
	return err != nil || modified
}

// IsDeleted reports whether Destroy has been called.
func (s *Session) IsDeleted() bool {
	return s.deleted
}

// Destroy removes the backing entry. It is idempotent. In-memory data is kept,
// but a destroyed session is never written back by the response hook.
func (s *Session) Destroy(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.id); err != nil {
		return errors.Join(ErrDeleteSession, err)
	}
	if !s.deleted {
		s.metrics.event(EventDestroyed)
	}
	s.deleted = true
	return nil
}

// changes encodes the current data and compares it to the baseline.
func (s *Session) changes() (bool, []byte, error) {
	payload, err := json.Marshal(s.data)
	if err != nil {
		return false, nil, err
	}
	return string(payload) != string(s.baseline), payload, nil
}
