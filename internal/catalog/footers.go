package catalog

// Footers lists the site footer variants.
var Footers = []Variant{
	{
		Slug:          "footer-columns",
		Name:          "Column Footer",
		ComponentName: "ColumnFooter",
		Description:   "Multi-column footer with link groups and legal row.",
		Tags:          []string{"footer", "section", "links"},
		Props: map[string]PropDef{
			"columns": {
				Control:     ControlNumber,
				Default:     4,
				Description: "Number of link columns",
				Min:         f64(2),
				Max:         f64(6),
			},
			"showSocial": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Render the social icon row",
			},
			"background": {
				Control:     ControlColor,
				Default:     "#09090b",
				Description: "Footer background color",
			},
		},
	},
	{
		Slug:          "footer-minimal",
		Name:          "Minimal Footer",
		ComponentName: "MinimalFooter",
		Description:   "Single-row footer with copyright and a few links.",
		Tags:          []string{"footer", "section", "minimal"},
		Props: map[string]PropDef{
			"copyright": {
				Control:     ControlText,
				Default:     "© 2026 UI Studio",
				Description: "Copyright line",
			},
			"centered": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Center the footer content",
			},
		},
	},
	{
		Slug:          "footer-cta",
		Name:          "CTA Footer",
		ComponentName: "CTAFooter",
		Description:   "Footer topped with a final call-to-action block.",
		Tags:          []string{"footer", "section", "cta"},
		Props: map[string]PropDef{
			"ctaHeading": {
				Control:     ControlText,
				Default:     "Start building today",
				Description: "Heading of the call-to-action block",
			},
			"ctaLabel": {
				Control:     ControlText,
				Default:     "Get started",
				Description: "Call-to-action label",
			},
			"showLinkColumns": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Render link columns below the call-to-action",
			},
		},
	},
}
