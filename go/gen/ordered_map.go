// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package gen

import (
	"fmt"
	"slices"
	"strings"
)

// Entry is a key/value pair of an OrderedMap.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedMap is an immutable mapping remembering the order in which its keys
// were inserted. Iteration through Keys, Values and Entries follows that
// order.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap creates a map holding the given entries. If a key occurs
// more than once, the last value is kept at the position of the first
// occurrence.
func NewOrderedMap[K comparable, V any](entries ...Entry[K, V]) *OrderedMap[K, V] {
	res := &OrderedMap[K, V]{
		keys:   make([]K, 0, len(entries)),
		values: make(map[K]V, len(entries)),
	}
	for _, entry := range entries {
		res.set(entry.Key, entry.Value)
	}
	return res
}

func (m *OrderedMap[K, V]) set(key K, value V) {
	if _, found := m.values[key]; !found {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *OrderedMap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	value, found := m.values[key]
	return value, found
}

func (m *OrderedMap[K, V]) Has(key K) bool {
	_, found := m.Get(key)
	return found
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// Values returns the values in key insertion order.
func (m *OrderedMap[K, V]) Values() []V {
	if m == nil {
		return nil
	}
	res := make([]V, 0, len(m.keys))
	for _, key := range m.keys {
		res = append(res, m.values[key])
	}
	return res
}

func (m *OrderedMap[K, V]) Entries() []Entry[K, V] {
	if m == nil {
		return nil
	}
	res := make([]Entry[K, V], 0, len(m.keys))
	for _, key := range m.keys {
		res = append(res, Entry[K, V]{Key: key, Value: m.values[key]})
	}
	return res
}

// Restrict returns a map holding only the given keys present in m, in the
// order of m.
func (m *OrderedMap[K, V]) Restrict(keys []K) *OrderedMap[K, V] {
	res := NewOrderedMap[K, V]()
	for _, entry := range m.Entries() {
		if slices.Contains(keys, entry.Key) {
			res.set(entry.Key, entry.Value)
		}
	}
	return res
}

func (m *OrderedMap[K, V]) String() string {
	entries := make([]string, 0, m.Len())
	for _, entry := range m.Entries() {
		entries = append(entries, fmt.Sprintf("%v:%v", entry.Key, entry.Value))
	}
	return "{" + strings.Join(entries, ",") + "}"
}
