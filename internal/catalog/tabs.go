package catalog

// Tabs lists the inline tab variants.
var Tabs = []Variant{
	{
		Slug:          "tabs-underline",
		Name:          "Underline Tabs",
		ComponentName: "UnderlineTabs",
		Description:   "Horizontal tabs with an animated underline indicator.",
		Tags:          []string{"tabs", "navigation", "underline"},
		Props: map[string]PropDef{
			"activeIndex": {
				Control:     ControlNumber,
				Default:     0,
				Description: "Index of the selected tab",
				Min:         f64(0),
				Max:         f64(5),
			},
			"indicatorColor": {
				Control:     ControlColor,
				Default:     "#6366f1",
				Description: "Underline indicator color",
			},
			"stretch": {
				Control:     ControlBoolean,
				Default:     false,
				Description: "Distribute tabs across the full width",
			},
		},
	},
	{
		Slug:          "tabs-pill",
		Name:          "Pill Tabs",
		ComponentName: "PillTabs",
		Description:   "Tabs rendered as rounded pills on a track.",
		Tags:          []string{"tabs", "navigation", "pill"},
		Props: mergeProps(appearanceProps, map[string]PropDef{
			"activeIndex": {
				Control:     ControlNumber,
				Default:     0,
				Description: "Index of the selected tab",
				Min:         f64(0),
				Max:         f64(5),
			},
			"radius": {
				Control:     ControlNumber,
				Default:     9999,
				Description: "Pill corner radius in pixels",
				Min:         f64(4),
				Max:         f64(9999),
			},
		}),
	},
	{
		Slug:          "tabs-vertical",
		Name:          "Vertical Tabs",
		ComponentName: "VerticalTabs",
		Description:   "Stacked tabs for settings-style layouts.",
		Tags:          []string{"tabs", "navigation", "vertical", "settings"},
		Props: map[string]PropDef{
			"activeIndex": {
				Control:     ControlNumber,
				Default:     0,
				Description: "Index of the selected tab",
				Min:         f64(0),
				Max:         f64(8),
			},
			"showIcons": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Render a leading icon per tab",
			},
		},
	},
}
