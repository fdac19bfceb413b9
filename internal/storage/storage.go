// Package storage provides the local key-value persistence used for the
// cart snapshot. It plays the role a browser's localStorage plays for a
// client-side storefront: a handful of serialized values under fixed keys,
// shared at most with other processes on the same machine (last write wins).
package storage

// Store is a minimal key-value store. Get reports whether the key was
// present; missing keys are not errors.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
