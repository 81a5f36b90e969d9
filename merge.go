package geocluster

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/geocluster/grid"
	"github.com/hupe1980/geocluster/pixel"
	"github.com/hupe1980/geocluster/projection"
)

// MergeNeighbors collapses groups in adjacent cells whose representatives
// render within DefaultDistance pixels of each other at the given zoom.
// It returns the number of groups absorbed into a neighbor.
//
// Keys are visited in ascending order and only the northwest, north,
// northeast and east neighbors of each cell are considered, so every
// adjacent pair is examined once. Absorbed groups are marked and swept
// after the pass; a group absorbed mid-pass no longer attracts further
// neighbors of its own.
func (og *OrderedGroups[T]) MergeNeighbors(zoom int) (int, error) {
	return og.mergeNeighbors(zoom, DefaultDistance)
}

func (og *OrderedGroups[T]) mergeNeighbors(zoom, distance int) (int, error) {
	resolution, err := projection.Resolution(zoom)
	if err != nil {
		return 0, translateError(err)
	}

	removed := roaring.New()

	for i, key := range og.keys {
		if removed.Contains(uint32(i)) {
			continue
		}

		item := og.groups[i]
		if item.Empty() {
			return int(removed.GetCardinality()), &ErrInvariantViolation{Key: key, Reason: "empty group"}
		}

		for _, nb := range grid.ForwardNeighbors(key) {
			j, ok := og.index[nb]
			if !ok || j == i || removed.Contains(uint32(j)) {
				continue
			}

			other := og.groups[j]
			if !pixel.WithinThreshold(item.Geometry(), other.Geometry(), resolution, float64(distance)) {
				continue
			}

			item.Absorb(other)
			removed.Add(uint32(j))
		}
	}

	og.sweep(removed)

	return int(removed.GetCardinality()), nil
}

// sweep drops all groups marked removed, preserving key order.
func (og *OrderedGroups[T]) sweep(removed *roaring.Bitmap) {
	if removed.IsEmpty() {
		return
	}

	keys := og.keys[:0]
	groups := og.groups[:0]
	for i := range og.keys {
		if removed.Contains(uint32(i)) {
			continue
		}
		keys = append(keys, og.keys[i])
		groups = append(groups, og.groups[i])
	}
	for i := len(groups); i < len(og.groups); i++ {
		og.keys[i] = ""
		og.groups[i] = nil
	}
	og.keys = keys
	og.groups = groups

	clear(og.index)
	for i, key := range og.keys {
		og.index[key] = i
	}
}
