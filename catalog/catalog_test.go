package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/patterns-prep/patterns-prep/patterns"
)

func TestLoad_EmbeddedCatalogParses(t *testing.T) {
	cat, err := Load()
	assert.NoError(t, err)
	assert.Len(t, cat.Patterns, 15)
	assert.NotEmpty(t, cat.Tips.Advice)
	assert.NotEmpty(t, cat.Tips.FollowUps)
}

func TestLoad_SlugsMatchDemoRegistry(t *testing.T) {
	// GIVEN the embedded catalog and the demo registry
	cat, err := Load()
	assert.NoError(t, err)

	// THEN every demo has a catalog entry, in the same order
	demos := patterns.All()
	assert.Equal(t, len(demos), len(cat.Patterns))
	for i, d := range demos {
		assert.Equal(t, d.Slug, cat.Patterns[i].Slug,
			"catalog entry %d must match menu order", i)
		entry, ok := cat.Entry(d.Slug)
		assert.True(t, ok, "missing catalog entry for %q", d.Slug)
		assert.NotEmpty(t, entry.Label)
		assert.NotEmpty(t, entry.Summary)
	}
}

func TestEntry_UnknownSlug(t *testing.T) {
	cat, err := Load()
	assert.NoError(t, err)
	_, ok := cat.Entry("flyweight")
	assert.False(t, ok)
}
