package vault

import "sync"

// MemoryVault keeps values in process memory only. It satisfies Vault for
// tests and throwaway sessions; nothing survives a restart.
type MemoryVault struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryVault creates an empty MemoryVault
func NewMemoryVault() *MemoryVault {
	return &MemoryVault{values: make(map[string]string)}
}

func (m *MemoryVault) Put(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryVault) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryVault) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryVault) DeleteMany(keys []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}
