package docstore

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process Store used by tests. Documents keep insertion
// order so field queries have a stable "first match".
type Memory struct {
	mu    sync.Mutex
	colls map[string]*memColl

	// ForcedErr, when set, is returned by every operation. Tests use it
	// to simulate a failing remote store.
	ForcedErr error

	nextID int
}

type memColl struct {
	keys []string
	docs map[string]Document
}

func NewMemory() *Memory {
	return &Memory{colls: make(map[string]*memColl)}
}

func (m *Memory) coll(name string) *memColl {
	c, ok := m.colls[name]
	if !ok {
		c = &memColl{docs: make(map[string]Document)}
		m.colls[name] = c
	}
	return c
}

func (m *Memory) Set(_ context.Context, collection, key string, data Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return m.ForcedErr
	}
	c := m.coll(collection)
	if _, exists := c.docs[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.docs[key] = clone(data)
	return nil
}

func (m *Memory) Get(_ context.Context, collection, key string) (Document, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return nil, false, m.ForcedErr
	}
	doc, ok := m.coll(collection).docs[key]
	if !ok {
		return nil, false, nil
	}
	return clone(doc), true, nil
}

func (m *Memory) Add(_ context.Context, collection string, data Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return m.ForcedErr
	}
	m.nextID++
	c := m.coll(collection)
	key := fmt.Sprintf("auto-%d", m.nextID)
	c.keys = append(c.keys, key)
	c.docs[key] = clone(data)
	return nil
}

func (m *Memory) FindByField(_ context.Context, collection, field string, value any) (Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	c := m.coll(collection)
	for _, key := range c.keys {
		if c.docs[key][field] == value {
			return clone(c.docs[key]), nil
		}
	}
	return nil, ErrNoDocument
}

func (m *Memory) Stream(_ context.Context, collection string) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	c := m.coll(collection)
	out := make([]Document, 0, len(c.keys))
	for _, key := range c.keys {
		out = append(out, clone(c.docs[key]))
	}
	return out, nil
}

// Len reports how many documents the collection holds.
func (m *Memory) Len(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.coll(collection).keys)
}

func clone(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
