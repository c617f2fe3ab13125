// Package cookie is a thin helper around net/http cookies that applies a
// shared set of default attributes (Path, Domain, Secure, HttpOnly,
// SameSite) to every cookie a component writes.
//
//	m := cookie.New(cookie.WithSecure(true))
//	m.Set(w, "sess", value, cookie.WithMaxAge(34560000))
//	v, err := m.Get(r, "sess") // cookie.ErrCookieNotFound when absent
//
// Setting a positive Max-Age also emits an equivalent Expires attribute.
//
// Config mirrors the attributes with env tags and is meant to be embedded in
// a larger configuration struct with an envPrefix.
package cookie
