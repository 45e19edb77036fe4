// Package kv provides the key-value backends the rating store persists to.
package kv

type Memory struct {
	data map[string]string
}

// NewMemory returns a volatile in-process store. It backs tests and the
// memory ratings backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.data[key] = value
	return nil
}
