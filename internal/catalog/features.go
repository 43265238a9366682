package catalog

// Features lists the feature section variants.
var Features = []Variant{
	{
		Slug:          "features-grid",
		Name:          "Feature Grid",
		ComponentName: "FeatureGrid",
		Description:   "Responsive grid of feature cards with icons.",
		Tags:          []string{"features", "section", "grid"},
		Props: mergeProps(sectionProps, map[string]PropDef{
			"columns": {
				Control:     ControlNumber,
				Default:     3,
				Description: "Grid columns on desktop",
				Min:         f64(2),
				Max:         f64(4),
			},
			"showIcons": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Render an icon per feature card",
			},
		}),
	},
	{
		Slug:          "features-alternating",
		Name:          "Alternating Features",
		ComponentName: "AlternatingFeatures",
		Description:   "Full-width rows alternating copy and imagery.",
		Tags:          []string{"features", "section", "rows"},
		Props: mergeProps(sectionProps, map[string]PropDef{
			"rows": {
				Control:     ControlNumber,
				Default:     3,
				Description: "Number of feature rows",
				Min:         f64(1),
				Max:         f64(6),
			},
			"startImageSide": {
				Control:     ControlSelect,
				Default:     "right",
				Description: "Image side of the first row",
				Options:     []string{"left", "right"},
			},
		}),
	},
	{
		Slug:          "features-comparison",
		Name:          "Comparison Table",
		ComponentName: "ComparisonTable",
		Description:   "Plan comparison table with per-tier feature checkmarks.",
		Tags:          []string{"features", "section", "pricing", "table"},
		Props: mergeProps(sectionProps, map[string]PropDef{
			"tiers": {
				Control:     ControlNumber,
				Default:     3,
				Description: "Number of plan columns",
				Min:         f64(2),
				Max:         f64(4),
			},
			"highlightTier": {
				Control:     ControlNumber,
				Default:     1,
				Description: "Index of the emphasized plan column",
				Min:         f64(0),
				Max:         f64(3),
			},
		}),
	},
}
