package storage

// MemStore is an in-memory Store for tests and throwaway sessions.
type MemStore struct {
	entries map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{entries: map[string][]byte{}}
}

func (s *MemStore) Get(key string) ([]byte, bool, error) {
	value, ok := s.entries[key]
	return value, ok, nil
}

func (s *MemStore) Set(key string, value []byte) error {
	copied := make([]byte, len(value))
	copy(copied, value)
	s.entries[key] = copied
	return nil
}

func (s *MemStore) Delete(key string) error {
	delete(s.entries, key)
	return nil
}

// Compile-time interface check
var _ Store = (*MemStore)(nil)
