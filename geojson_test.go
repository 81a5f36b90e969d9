package geocluster

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeature(t *testing.T) {
	t.Run("SinglePoint", func(t *testing.T) {
		g := NewPointGroup(NewPoint(13.405, 52.52, "berlin"))

		f := g.Feature()
		require.NotNil(t, f)

		assert.Equal(t, orb.Point{13.405, 52.52}, f.Geometry)
		assert.Equal(t, 1, f.Properties[PropertyCount])
		assert.Equal(t, false, f.Properties[PropertyClustered])
		assert.Equal(t, "berlin", f.Properties[PropertyData])
	})

	t.Run("Cluster", func(t *testing.T) {
		g := NewPointGroup(NewPoint(0.0, 0.0, "a"))
		g.Add(NewPoint(1.0, 1.0, "b"))

		f := g.Feature()
		require.NotNil(t, f)

		assert.Equal(t, orb.Point{0.5, 0.5}, f.Geometry)
		assert.Equal(t, 2, f.Properties[PropertyCount])
		assert.Equal(t, true, f.Properties[PropertyClustered])

		// Clusters carry no single payload.
		_, ok := f.Properties[PropertyData]
		assert.False(t, ok)
	})
}

func TestFeatureCollection(t *testing.T) {
	a := NewPointGroup(NewPoint(0.0, 0.0, "a"))
	a.Add(NewPoint(1.0, 1.0, "b"))
	b := NewPointGroup(NewPoint(10.0, 10.0, "c"))

	fc := FeatureCollection([]*PointGroup[string]{a, b})
	require.NotNil(t, fc)
	require.Len(t, fc.Features, 2)

	assert.Equal(t, 2, fc.Features[0].Properties[PropertyCount])
	assert.Equal(t, 1, fc.Features[1].Properties[PropertyCount])
	assert.Equal(t, "c", fc.Features[1].Properties[PropertyData])
}

func TestFeatureCollectionEmpty(t *testing.T) {
	fc := FeatureCollection([]*PointGroup[int]{})
	require.NotNil(t, fc)
	assert.Empty(t, fc.Features)
}
