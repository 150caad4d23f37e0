package storage

// MemoryKV is a map-backed [KV] for tests and ephemeral sessions.
type MemoryKV struct {
	data map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: map[string]string{}}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func (m *MemoryKV) Close() error {
	return nil
}

// Len returns the number of stored keys.
func (m *MemoryKV) Len() int {
	return len(m.data)
}
