package session

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/filesession/pkg/httperr"
)

var (
	// ErrBadCookie is returned by the request hook when the session cookie
	// cannot be decoded. It maps to 403 with body "bad cookie".
	ErrBadCookie = httperr.New(http.StatusForbidden, "bad cookie")

	// ErrIDCollision indicates both id generation attempts hit existing entries.
	ErrIDCollision = errors.New("session.id_collision")

	// ErrIDGeneration indicates the id could not be generated or checked.
	ErrIDGeneration = errors.New("session.id_generation_failed")

	// ErrSessionNotFound is returned by stores when no entry exists for an id.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrCorruptSession indicates stored data is not a JSON object.
	ErrCorruptSession = errors.New("session.corrupt")

	// ErrLoadSession wraps unexpected store failures while loading.
	ErrLoadSession = errors.New("session.load_failed")

	// ErrSaveSession wraps failures while persisting session data.
	ErrSaveSession = errors.New("session.save_failed")

	// ErrDeleteSession wraps failures while removing a backing entry.
	ErrDeleteSession = errors.New("session.delete_failed")

	// ErrStorageDir indicates the storage directory could not be prepared.
	ErrStorageDir = errors.New("session.storage_dir")
)
