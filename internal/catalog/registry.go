package catalog

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

// Entry is a variant flattened with its category label.
type Entry struct {
	Variant
	Category string `json:"category"`
}

// CategoryCount reports how many variants a category carries.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Registry is the immutable slug-keyed view over every catalog, built once
// at startup. All reads are lock-free.
type Registry struct {
	bySlug     map[string]Entry
	entries    []Entry
	categories []CategoryCount
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// BuildRegistry validates every catalog and assembles the lookup tables.
// Duplicate slugs across catalogs are a build error, never a silent
// overwrite.
func BuildRegistry() (*Registry, error) {
	return buildRegistry(Catalogs())
}

func buildRegistry(catalogs []Catalog) (*Registry, error) {
	reg := &Registry{
		bySlug: make(map[string]Entry),
	}

	var errs error
	counts := make(map[string]int)

	for _, cat := range catalogs {
		if strings.TrimSpace(cat.Category) == "" {
			errs = multierr.Append(errs, fmt.Errorf("catalog with empty category label"))
			continue
		}
		for _, variant := range cat.Variants {
			if err := validateVariant(cat.Category, variant); err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			if existing, ok := reg.bySlug[variant.Slug]; ok {
				errs = multierr.Append(errs, fmt.Errorf(
					"duplicate slug %q in catalog %q (already defined in %q)",
					variant.Slug, cat.Category, existing.Category,
				))
				continue
			}

			entry := Entry{Variant: variant, Category: cat.Category}
			reg.bySlug[variant.Slug] = entry
			reg.entries = append(reg.entries, entry)
			counts[cat.Category]++
		}
	}

	if errs != nil {
		return nil, errs
	}

	for _, cat := range catalogs {
		if n := counts[cat.Category]; n > 0 {
			reg.categories = append(reg.categories, CategoryCount{Name: cat.Category, Count: n})
		}
	}

	return reg, nil
}

func validateVariant(category string, variant Variant) error {
	if err := validate.Struct(variant); err != nil {
		return fmt.Errorf("catalog %q variant %q: %w", category, variant.Slug, err)
	}

	var errs error
	names := make([]string, 0, len(variant.Props))
	for name := range variant.Props {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := variant.Props[name]
		if def.Control == ControlSelect && len(def.Options) == 0 {
			errs = multierr.Append(errs, fmt.Errorf(
				"catalog %q variant %q prop %q: select control requires options",
				category, variant.Slug, name,
			))
		}
		if def.Control != ControlSelect && len(def.Options) > 0 {
			errs = multierr.Append(errs, fmt.Errorf(
				"catalog %q variant %q prop %q: options only apply to select controls",
				category, variant.Slug, name,
			))
		}
		if def.Min != nil && def.Max != nil && *def.Min > *def.Max {
			errs = multierr.Append(errs, fmt.Errorf(
				"catalog %q variant %q prop %q: min %v exceeds max %v",
				category, variant.Slug, name, *def.Min, *def.Max,
			))
		}
	}
	return errs
}

// Len returns the number of registered variants.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Lookup returns the entry for a slug.
func (r *Registry) Lookup(slug string) (Entry, bool) {
	entry, ok := r.bySlug[slug]
	return entry, ok
}

// Entries returns every variant in catalog order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Search filters entries by a case-insensitive substring on slug, name,
// component name and tags, optionally restricted to one category.
func (r *Registry) Search(query, category string) []Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	category = strings.ToLower(strings.TrimSpace(category))

	out := make([]Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		if category != "" && strings.ToLower(entry.Category) != category {
			continue
		}
		if query != "" && !entryMatches(entry, query) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// Categories returns the category labels with variant counts.
func (r *Registry) Categories() []CategoryCount {
	out := make([]CategoryCount, len(r.categories))
	copy(out, r.categories)
	return out
}

func entryMatches(entry Entry, query string) bool {
	if strings.Contains(strings.ToLower(entry.Slug), query) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.ComponentName), query) {
		return true
	}
	for _, tag := range entry.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
