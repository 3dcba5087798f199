// Package tokenstore persists the bearer token between app launches. It is
// the only client-side persistence: one string value under a fixed key,
// read at cold start and cleared on logout.
package tokenstore

type Store interface {
	Get() (string, error)
	Set(token string) error
	Remove() error
}
