package catalog

// TabBars lists the mobile tab bar variants.
var TabBars = []Variant{
	{
		Slug:          "tab-bar-classic",
		Name:          "Classic Tab Bar",
		ComponentName: "ClassicTabBar",
		Description:   "Bottom navigation bar with icon and label per item.",
		Tags:          []string{"tab-bar", "mobile", "navigation"},
		Props: map[string]PropDef{
			"items": {
				Control:     ControlNumber,
				Default:     4,
				Description: "Number of navigation items",
				Min:         f64(2),
				Max:         f64(5),
			},
			"activeColor": {
				Control:     ControlColor,
				Default:     "#6366f1",
				Description: "Tint for the active item",
			},
			"showLabels": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Render labels under the icons",
			},
		},
	},
	{
		Slug:          "tab-bar-floating",
		Name:          "Floating Tab Bar",
		ComponentName: "FloatingTabBar",
		Description:   "Detached pill-shaped tab bar hovering above the content.",
		Tags:          []string{"tab-bar", "mobile", "floating"},
		Props: mergeProps(appearanceProps, map[string]PropDef{
			"items": {
				Control:     ControlNumber,
				Default:     4,
				Description: "Number of navigation items",
				Min:         f64(2),
				Max:         f64(5),
			},
			"bottomOffset": {
				Control:     ControlNumber,
				Default:     24,
				Description: "Distance from the screen bottom in pixels",
				Min:         f64(0),
				Max:         f64(64),
			},
		}),
	},
	{
		Slug:          "tab-bar-center-action",
		Name:          "Center Action Tab Bar",
		ComponentName: "CenterActionTabBar",
		Description:   "Tab bar with a raised primary action in the middle.",
		Tags:          []string{"tab-bar", "mobile", "action"},
		Props: map[string]PropDef{
			"actionIcon": {
				Control:     ControlSelect,
				Default:     "plus",
				Description: "Icon inside the raised action button",
				Options:     []string{"plus", "camera", "mic", "send"},
			},
			"actionColor": {
				Control:     ControlColor,
				Default:     "#6366f1",
				Description: "Raised action background color",
			},
			"showLabels": {
				Control:     ControlBoolean,
				Default:     false,
				Description: "Render labels under the icons",
			},
		},
	},
}
