package catalog

// Heroes lists the landing hero section variants.
var Heroes = []Variant{
	{
		Slug:          "hero-centered",
		Name:          "Centered Hero",
		ComponentName: "CenteredHero",
		Description:   "Classic centered hero with heading, copy and two actions.",
		Tags:          []string{"hero", "section", "landing"},
		Props: mergeProps(sectionProps, map[string]PropDef{
			"primaryCta": {
				Control:     ControlText,
				Default:     "Get started",
				Description: "Primary call-to-action label",
			},
			"secondaryCta": {
				Control:     ControlText,
				Default:     "View components",
				Description: "Secondary call-to-action label",
			},
		}),
	},
	{
		Slug:          "hero-split",
		Name:          "Split Hero",
		ComponentName: "SplitHero",
		Description:   "Copy on the left, product screenshot on the right.",
		Tags:          []string{"hero", "section", "screenshot"},
		Props: mergeProps(sectionProps, map[string]PropDef{
			"align": {
				Control:     ControlSelect,
				Default:     "left",
				Description: "Horizontal content alignment",
				Options:     []string{"left", "center", "right"},
			},
			"imagePosition": {
				Control:     ControlSelect,
				Default:     "right",
				Description: "Which side holds the screenshot",
				Options:     []string{"left", "right"},
			},
		}),
	},
	{
		Slug:          "hero-gradient",
		Name:          "Gradient Hero",
		ComponentName: "GradientHero",
		Description:   "Hero on an animated gradient backdrop.",
		Tags:          []string{"hero", "section", "gradient"},
		Props: mergeProps(sectionProps, map[string]PropDef{
			"gradientFrom": {
				Control:     ControlColor,
				Default:     "#6366f1",
				Description: "Gradient start color",
			},
			"gradientTo": {
				Control:     ControlColor,
				Default:     "#ec4899",
				Description: "Gradient end color",
			},
			"animate": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Animate the gradient",
			},
		}),
	},
	{
		Slug:          "hero-minimal",
		Name:          "Minimal Hero",
		ComponentName: "MinimalHero",
		Description:   "Short hero with a single heading and one action.",
		Tags:          []string{"hero", "section", "minimal"},
		Props: mergeProps(sectionProps, map[string]PropDef{
			"paddingY": {
				Control:     ControlNumber,
				Default:     64,
				Description: "Vertical padding in pixels",
				Min:         f64(0),
				Max:         f64(160),
			},
			"primaryCta": {
				Control:     ControlText,
				Default:     "Start building",
				Description: "Primary call-to-action label",
			},
		}),
	},
}
