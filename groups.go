package geocluster

import (
	"slices"
)

// OrderedGroups holds point groups keyed by grid cell, with keys kept in
// ascending lexicographic order. The merge pass depends on that order to
// visit each neighbor pair exactly once.
type OrderedGroups[T any] struct {
	keys   []string
	groups []*PointGroup[T]
	index  map[string]int
}

// NewOrderedGroups creates an empty collection.
func NewOrderedGroups[T any]() *OrderedGroups[T] {
	return &OrderedGroups[T]{
		index: make(map[string]int),
	}
}

// newOrderedGroups builds the collection from a bucket map with a single
// sort instead of repeated ordered inserts.
func newOrderedGroups[T any](byKey map[string]*PointGroup[T]) *OrderedGroups[T] {
	og := &OrderedGroups[T]{
		keys:   make([]string, 0, len(byKey)),
		groups: make([]*PointGroup[T], 0, len(byKey)),
		index:  make(map[string]int, len(byKey)),
	}
	for key := range byKey {
		og.keys = append(og.keys, key)
	}
	slices.Sort(og.keys)
	for i, key := range og.keys {
		og.groups = append(og.groups, byKey[key])
		og.index[key] = i
	}
	return og
}

// Put inserts the group under key, or replaces the group already there.
func (og *OrderedGroups[T]) Put(key string, g *PointGroup[T]) {
	if i, ok := og.index[key]; ok {
		og.groups[i] = g
		return
	}
	i, _ := slices.BinarySearch(og.keys, key)
	og.keys = slices.Insert(og.keys, i, key)
	og.groups = slices.Insert(og.groups, i, g)
	for j := i; j < len(og.keys); j++ {
		og.index[og.keys[j]] = j
	}
}

// Get returns the group under key, if any.
func (og *OrderedGroups[T]) Get(key string) (*PointGroup[T], bool) {
	i, ok := og.index[key]
	if !ok {
		return nil, false
	}
	return og.groups[i], true
}

// Len returns the number of groups.
func (og *OrderedGroups[T]) Len() int {
	return len(og.keys)
}

// Keys returns the cell keys in ascending order.
func (og *OrderedGroups[T]) Keys() []string {
	return slices.Clone(og.keys)
}

// Groups returns the groups in key order.
func (og *OrderedGroups[T]) Groups() []*PointGroup[T] {
	return slices.Clone(og.groups)
}

// Points returns the total member count across all groups.
func (og *OrderedGroups[T]) Points() int {
	total := 0
	for _, g := range og.groups {
		total += g.Count()
	}
	return total
}
