package catalog

// CTAs lists the call-to-action section variants.
var CTAs = []Variant{
	{
		Slug:          "cta-banner",
		Name:          "CTA Banner",
		ComponentName: "CTABanner",
		Description:   "Full-width banner with heading and a single action.",
		Tags:          []string{"cta", "section", "banner"},
		Props: mergeProps(sectionProps, map[string]PropDef{
			"ctaLabel": {
				Control:     ControlText,
				Default:     "Upgrade to Pro",
				Description: "Call-to-action label",
			},
			"paddingY": {
				Control:     ControlNumber,
				Default:     48,
				Description: "Vertical padding in pixels",
				Min:         f64(0),
				Max:         f64(120),
			},
		}),
	},
	{
		Slug:          "cta-card",
		Name:          "CTA Card",
		ComponentName: "CTACard",
		Description:   "Elevated card with copy and action, usable inline.",
		Tags:          []string{"cta", "card"},
		Props: mergeProps(appearanceProps, map[string]PropDef{
			"heading": {
				Control:     ControlText,
				Default:     "Ready to ship faster?",
				Description: "Card heading",
			},
			"ctaLabel": {
				Control:     ControlText,
				Default:     "Start free trial",
				Description: "Call-to-action label",
			},
		}),
	},
	{
		Slug:          "cta-newsletter",
		Name:          "Newsletter CTA",
		ComponentName: "NewsletterCTA",
		Description:   "Email capture row with inline input and submit.",
		Tags:          []string{"cta", "newsletter", "form"},
		Props: mergeProps(sectionProps, map[string]PropDef{
			"placeholder": {
				Control:     ControlText,
				Default:     "Enter your email",
				Description: "Email input placeholder",
			},
			"submitLabel": {
				Control:     ControlText,
				Default:     "Subscribe",
				Description: "Submit button label",
			},
			"showPrivacyNote": {
				Control:     ControlBoolean,
				Default:     true,
				Description: "Render the privacy note under the form",
			},
		}),
	},
}
