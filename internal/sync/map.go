// SPDX-License-Identifier: Apache-2.0

package sync

import (
	"maps"
	"sync"
)

// Map is a mutex guarded generic map.
type Map[T comparable, K any] struct {
	m     map[T]K
	mutex *sync.RWMutex
}

func NewMap[T comparable, K any]() *Map[T, K] {
	return &Map[T, K]{
		m:     make(map[T]K),
		mutex: &sync.RWMutex{},
	}
}

func (m *Map[T, K]) Get(key T) (K, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	value, ok := m.m[key]
	return value, ok
}

func (m *Map[T, K]) Set(key T, value K) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.m[key] = value
}

// GetOrSet returns the existing value for the key if present. Otherwise it
// stores the value produced by newValue and returns it. newValue is only
// called when the key is absent.
func (m *Map[T, K]) GetOrSet(key T, newValue func() K) K {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if value, ok := m.m[key]; ok {
		return value
	}
	value := newValue()
	m.m[key] = value
	return value
}

func (m *Map[T, K]) Delete(key T) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.m, key)
}

func (m *Map[T, K]) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.m)
}

func (m *Map[T, K]) GetMap() map[T]K {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	result := make(map[T]K, len(m.m))
	maps.Copy(result, m.m)
	return result
}
