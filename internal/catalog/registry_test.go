package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRegistryFromShippedCatalogs(t *testing.T) {
	reg, err := BuildRegistry()
	require.NoError(t, err)

	entries := reg.Entries()
	require.NotEmpty(t, entries)

	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		assert.False(t, seen[entry.Slug], "slug %q appears twice", entry.Slug)
		seen[entry.Slug] = true
		assert.NotEmpty(t, entry.Category)
	}

	total := 0
	for _, cat := range reg.Categories() {
		assert.Greater(t, cat.Count, 0)
		total += cat.Count
	}
	assert.Equal(t, len(entries), total)
}

func TestRegistryLookup(t *testing.T) {
	reg, err := BuildRegistry()
	require.NoError(t, err)

	entry, ok := reg.Lookup("button-primary")
	require.True(t, ok)
	assert.Equal(t, "buttons", entry.Category)
	assert.Equal(t, "PrimaryButton", entry.ComponentName)

	_, ok = reg.Lookup("no-such-slug")
	assert.False(t, ok)
}

func TestRegistrySearch(t *testing.T) {
	reg, err := BuildRegistry()
	require.NoError(t, err)

	t.Run("by category", func(t *testing.T) {
		entries := reg.Search("", "buttons")
		require.NotEmpty(t, entries)
		for _, entry := range entries {
			assert.Equal(t, "buttons", entry.Category)
		}
	})

	t.Run("by substring", func(t *testing.T) {
		entries := reg.Search("hero", "")
		require.NotEmpty(t, entries)
		for _, entry := range entries {
			assert.Equal(t, "heroes", entry.Category)
		}
	})

	t.Run("by tag", func(t *testing.T) {
		entries := reg.Search("keyboard", "")
		require.Len(t, entries, 1)
		assert.Equal(t, "dialog-command", entries[0].Slug)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, reg.Search("zzz-nothing", ""))
	})

	t.Run("query scoped to wrong category", func(t *testing.T) {
		assert.Empty(t, reg.Search("hero", "buttons"))
	})
}

func TestBuildRegistryRejectsDuplicateSlugs(t *testing.T) {
	catalogs := []Catalog{
		{Category: "one", Variants: []Variant{{
			Slug: "dup", Name: "A", ComponentName: "A",
		}}},
		{Category: "two", Variants: []Variant{{
			Slug: "dup", Name: "B", ComponentName: "B",
		}}},
	}

	_, err := buildRegistry(catalogs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate slug "dup"`)
}

func TestBuildRegistryValidation(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
	}{
		{
			name:    "missing slug",
			variant: Variant{Name: "X", ComponentName: "X"},
		},
		{
			name: "select without options",
			variant: Variant{
				Slug: "x", Name: "X", ComponentName: "X",
				Props: map[string]PropDef{
					"mode": {Control: ControlSelect, Default: "a"},
				},
			},
		},
		{
			name: "options on non-select",
			variant: Variant{
				Slug: "x", Name: "X", ComponentName: "X",
				Props: map[string]PropDef{
					"label": {Control: ControlText, Default: "a", Options: []string{"a"}},
				},
			},
		},
		{
			name: "min above max",
			variant: Variant{
				Slug: "x", Name: "X", ComponentName: "X",
				Props: map[string]PropDef{
					"width": {Control: ControlNumber, Default: 1, Min: f64(10), Max: f64(5)},
				},
			},
		},
		{
			name: "unknown control kind",
			variant: Variant{
				Slug: "x", Name: "X", ComponentName: "X",
				Props: map[string]PropDef{
					"label": {Control: ControlKind("slider"), Default: 1},
				},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := buildRegistry([]Catalog{{Category: "test", Variants: []Variant{tc.variant}}})
			assert.Error(t, err)
		})
	}
}

func TestMergePropsLaterSetsWin(t *testing.T) {
	base := map[string]PropDef{
		"radius": {Control: ControlNumber, Default: 8},
		"label":  {Control: ControlText, Default: "base"},
	}
	override := map[string]PropDef{
		"label": {Control: ControlText, Default: "override"},
	}

	merged := mergeProps(base, override)

	assert.Equal(t, "override", merged["label"].Default)
	assert.Equal(t, 8, merged["radius"].Default)

	// The merge never aliases the inputs.
	merged["radius"] = PropDef{Control: ControlNumber, Default: 0}
	assert.Equal(t, 8, base["radius"].Default)
}
