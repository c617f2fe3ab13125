// Package session provides cookie-identified sessions persisted as one JSON
// file per session.
//
// A client is identified by a cookie whose value is "<hex id>.<unix expiry>".
// On each request the Manager decodes the cookie, loads the session data from
// its Store and attaches a *Session to the request context. After the handler
// returns, the data is written back only if it differs from what was loaded.
//
// # Lifecycle
//
// The first request without a cookie receives a new id and no session; the
// session exists from the next request on. A cookie that cannot be decoded
// aborts the request with ErrBadCookie (403 "bad cookie"). Expired cookies and
// corrupt stored data are discarded and replaced by a fresh id, so clients
// recover without intervention. Every session request slides the expiry
// forward by the configured TTL.
//
// # Usage
//
//	mgr, err := session.New(
//	    session.WithDir("/var/lib/myapp/sess"),
//	    session.WithTTL(time.Hour),
//	    session.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//
//	r := chi.NewRouter()
//	r.Use(mgr.Middleware())
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    sess, ok := session.FromContext(r.Context())
//	    if !ok {
//	        return // cookie was just issued
//	    }
//	    n, _ := sess.GetInt("visits")
//	    sess.Set("visits", n+1)
//	})
//
// Hosts with their own hook lists can call Register with any hooks.Host
// instead of using Middleware.
//
// # Storage
//
// FileStore (the default) writes through an afero.Fs, replacing files
// atomically. MemoryStore and RedisStore implement the same Store interface.
// Concurrent requests sharing one cookie are not coordinated: the last save
// wins.
package session
