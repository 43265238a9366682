package catalog

// Headers lists the site header variants.
var Headers = []Variant{
	{
		Slug:          "header-sticky",
		Name:          "Sticky Header",
		ComponentName: "StickyHeader",
		Description:   "Header pinned to the top with a blur backdrop on scroll.",
		Tags:          []string{"header", "navigation", "sticky"},
		Props: map[string]PropDef{
			"blurOnScroll": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Blur the backdrop once the page scrolls",
			},
			"height": {
				Control:     ControlNumber,
				Default:     64,
				Description: "Header height in pixels",
				Min:         f64(48),
				Max:         f64(96),
			},
			"background": {
				Control:     ControlColor,
				Default:     "#09090b",
				Description: "Header background color",
			},
		},
	},
	{
		Slug:          "header-centered-logo",
		Name:          "Centered Logo Header",
		ComponentName: "CenteredLogoHeader",
		Description:   "Navigation split around a centered logo.",
		Tags:          []string{"header", "navigation", "logo"},
		Props: map[string]PropDef{
			"linksPerSide": {
				Control:     ControlNumber,
				Default:     3,
				Description: "Navigation links on each side of the logo",
				Min:         f64(1),
				Max:         f64(4),
			},
			"showCta": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Render the trailing call-to-action button",
			},
		},
	},
	{
		Slug:          "header-mega-menu",
		Name:          "Mega Menu Header",
		ComponentName: "MegaMenuHeader",
		Description:   "Header whose items open full-width dropdown panels.",
		Tags:          []string{"header", "navigation", "mega-menu"},
		Props: map[string]PropDef{
			"panelColumns": {
				Control:     ControlNumber,
				Default:     3,
				Description: "Columns inside the dropdown panel",
				Min:         f64(2),
				Max:         f64(5),
			},
			"openOn": {
				Control:     ControlSelect,
				Default:     "hover",
				Description: "Interaction that opens the panel",
				Options:     []string{"hover", "click"},
			},
			"showPreviewCard": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Render the featured preview card in the panel",
			},
		},
	},
}
