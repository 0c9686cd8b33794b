package progress

import (
	"context"
	"slices"
)

// MemoryKV is an in-process KV. Nothing survives the process.
type MemoryKV struct {
	data   map[string][]byte
	Writes int
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return slices.Clone(v), ok, nil
}

func (m *MemoryKV) Put(_ context.Context, key string, value []byte) error {
	m.data[key] = slices.Clone(value)
	m.Writes++
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}
